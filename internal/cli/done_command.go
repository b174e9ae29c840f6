package cli

import (
	"context"
	"fmt"
	"strconv"

	"deadline-tracker/internal/api"
)

// DoneCommand handles the done command
type DoneCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute marks the given task as completed
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskIDArg(args, "dt done <id>")
	if err != nil {
		return err
	}

	if err := c.api.MarkDone(ctx, c.scope, id); err != nil {
		return c.errorHandler.Handle("mark task done", err)
	}

	fmt.Printf("Task %d marked done\n", id)
	return nil
}

// parseTaskIDArg expects exactly one argument holding a task id
func parseTaskIDArg(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}
