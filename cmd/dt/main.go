package main

import (
	"fmt"
	"os"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/cli"
	"deadline-tracker/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(getEnvironment())
	repo, err := factory.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	apiInstance := api.New(repo)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
