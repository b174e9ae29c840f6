package domain

import (
	"deadline-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		TaskType:    domainTask.TaskType,
		Subject:     domainTask.Subject,
		DueDate:     domainTask.DueDate,
		Description: domainTask.Description,
		IsDone:      domainTask.IsDone,
		Priority:    domainTask.Priority,
		OwnerID:     domainTask.OwnerID,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		TaskType:    dbTask.TaskType,
		Subject:     dbTask.Subject,
		DueDate:     dbTask.DueDate,
		Description: dbTask.Description,
		IsDone:      dbTask.IsDone,
		Priority:    dbTask.Priority,
		OwnerID:     dbTask.OwnerID,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(domainUser User) sqlite.User {
	return sqlite.User{
		ID:           domainUser.ID,
		Username:     domainUser.Username,
		PasswordHash: domainUser.PasswordHash,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		PasswordHash: dbUser.PasswordHash,
	}
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		Subject: domainOpts.Subject,
		Done:    domainOpts.Done,
		DueFrom: domainOpts.DueFrom,
		DueTo:   domainOpts.DueTo,
		OwnerID: domainOpts.OwnerID,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task          *TaskMapper
	User          *UserMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:          NewTaskMapper(),
		User:          NewUserMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
