package cli

import (
	"fmt"
	"strings"
	"time"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api api.API) *App {
	return NewAppWithConfig(api, nil)
}

// NewAppWithConfig creates a new CLI application instance with configuration
func NewAppWithConfig(api api.API, cfg *config.Config) *App {
	app := &App{
		api:    api,
		config: cfg,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// NewAppWithDefaultRepository creates a CLI application backed by the
// configured SQLite repository. Used for production.
func NewAppWithDefaultRepository() (*App, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewAppWithConfig(api.New(repo), cfg), nil
}

// Run executes the CLI application with the given arguments
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(commandName, commandArgs)
}

// scope returns the task visibility scope for CLI commands. The CLI runs on
// the local database and always sees every task, including owned ones.
func (a *App) scope() api.Scope {
	return api.Scope{}
}

// parseFieldArgs splits command arguments into key=value fields and the
// remaining positional words. Commands use fields like due=2026-03-10 or
// subject="Linear Algebra"; anything without an equals sign is positional.
func parseFieldArgs(args []string) (map[string]string, []string) {
	fields := make(map[string]string)
	var positional []string

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			positional = append(positional, arg)
			continue
		}
		fields[key] = value
	}

	return fields, positional
}
