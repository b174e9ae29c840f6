package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Command defines the interface for CLI command handlers
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages the registration and execution of CLI commands
type CommandRegistry struct {
	app      *App
	commands map[string]Command
}

// NewCommandRegistry creates a registry with all commands registered
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		app:      app,
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("subjects", NewSubjectsCommand(app))
	registry.Register("dashboard", NewDashboardCommand(app))
	registry.Register("done", NewDoneCommand(app))
	registry.Register("undo", NewUndoCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("serve", NewServeCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the named command with a timeout derived from the
// application configuration. The serve command manages its own lifetime
// and runs without a deadline.
func (r *CommandRegistry) Execute(name string, args []string) error {
	command, exists := r.commands[name]
	if !exists {
		return fmt.Errorf("unknown command: %s\n%s", name, r.GetUsage())
	}

	if name == "serve" {
		return command.Execute(context.Background(), args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.appTimeout())
	defer cancel()

	return command.Execute(ctx, args)
}

// GetUsage returns the usage string listing all registered commands
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("usage: dt <command> [arguments]\n\nAvailable commands: %s", strings.Join(names, ", "))
}

func (r *CommandRegistry) appTimeout() time.Duration {
	if r.app != nil && r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second
}
