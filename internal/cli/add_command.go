package cli

import (
	"context"
	"fmt"
	"strings"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/repository/sqlite"
	"deadline-tracker/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. The title is taken from the positional
// words; everything else is a key=value field.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	fields, positional := parseFieldArgs(args)
	if len(positional) == 0 {
		return fmt.Errorf("usage: dt add <title> due=YYYY-MM-DD subject=<subject> type=<type> [priority=required|optional] [desc=<text>]")
	}

	input := validation.TaskInput{
		Title:       strings.Join(positional, " "),
		TaskType:    fields["type"],
		Subject:     fields["subject"],
		DueDate:     fields["due"],
		Description: fields["desc"],
		Priority:    fields["priority"],
	}

	task, err := c.api.AddTask(ctx, c.scope, input)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (due %s)\n", task.ID, task.Title, task.DueDate.Format(sqlite.DateLayout))
	return nil
}
