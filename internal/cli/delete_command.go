package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute permanently removes the given task
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskIDArg(args, "dt delete <id>")
	if err != nil {
		return err
	}

	if err := c.api.DeleteTask(ctx, c.scope, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Task %d deleted\n", id)
	return nil
}
