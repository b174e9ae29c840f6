package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
)

// UndoCommand handles the undo command
type UndoCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewUndoCommand creates a new undo command handler
func NewUndoCommand(app *App) *UndoCommand {
	return &UndoCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute marks the given task as outstanding again
func (c *UndoCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskIDArg(args, "dt undo <id>")
	if err != nil {
		return err
	}

	if err := c.api.MarkUndone(ctx, c.scope, id); err != nil {
		return c.errorHandler.Handle("mark task undone", err)
	}

	fmt.Printf("Task %d marked outstanding\n", id)
	return nil
}
