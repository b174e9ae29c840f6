package main

import (
	"fmt"
	"os"

	"deadline-tracker/internal/config"
	"deadline-tracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository()
	case Testing:
		return rf.createTestingRepository()
	default:
		return config.CreateRepository(cfg)
	}
}

// createDevelopmentRepository uses a local database file in the working
// directory so development data stays out of the real database
func (rf *RepositoryFactory) createDevelopmentRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New("dt.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("DT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
