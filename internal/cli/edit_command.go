package cli

import (
	"context"
	"fmt"
	"strconv"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/repository/sqlite"
	"deadline-tracker/internal/validation"
)

// EditCommand handles the edit command
type EditCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute updates the given fields of a task, keeping the current value of
// every field not mentioned:
//
//	dt edit 12 due=2026-09-15
//	dt edit 12 title="Read chapter 5" priority=optional
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	fields, positional := parseFieldArgs(args)
	if len(positional) != 1 {
		return fmt.Errorf("usage: dt edit <id> [title=...] [due=YYYY-MM-DD] [subject=...] [type=...] [priority=...] [desc=...]")
	}

	id, err := strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id: %s", positional[0])
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to change for task %d", id)
	}

	task, err := c.api.GetTask(ctx, c.scope, id)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	input := validation.TaskInput{
		Title:       task.Title,
		TaskType:    task.TaskType,
		Subject:     task.Subject,
		DueDate:     task.DueDate.Format(sqlite.DateLayout),
		Description: task.Description,
		Priority:    task.Priority,
	}
	if v, ok := fields["title"]; ok {
		input.Title = v
	}
	if v, ok := fields["type"]; ok {
		input.TaskType = v
	}
	if v, ok := fields["subject"]; ok {
		input.Subject = v
	}
	if v, ok := fields["due"]; ok {
		input.DueDate = v
	}
	if v, ok := fields["desc"]; ok {
		input.Description = v
	}
	if v, ok := fields["priority"]; ok {
		input.Priority = v
	}

	updated, err := c.api.EditTask(ctx, c.scope, id, input)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task %d: %s (due %s)\n", updated.ID, updated.Title, updated.DueDate.Format(sqlite.DateLayout))
	return nil
}
