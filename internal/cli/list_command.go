package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/domain"
	"deadline-tracker/internal/repository/sqlite"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command with optional filter fields:
//
//	dt list                          # outstanding tasks
//	dt list show_done=1              # include completed tasks
//	dt list subject="Linear Algebra" # exact subject match
//	dt list range=week               # due-date window, outstanding only
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	fields, positional := parseFieldArgs(args)
	if len(positional) > 0 {
		return fmt.Errorf("unexpected argument: %s (use subject=, range= or show_done=1)", positional[0])
	}

	filter := domain.Filter{
		Subject:  fields["subject"],
		Range:    fields["range"],
		ShowDone: fields["show_done"] == "1",
	}

	tasks, err := c.api.ListFiltered(ctx, c.scope, filter)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	printTaskLines(tasks)
	return nil
}

// printTaskLines prints one line per task in the format:
//
//	[ ]   12  2026-09-01  homework   Math          Read chapter 4  OVERDUE
//
// The status box shows x for completed tasks. OVERDUE and soon markers are
// computed against today.
func printTaskLines(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}

	today := domain.DateOnly(timeNow())
	for _, task := range tasks {
		status := " "
		if task.IsDone {
			status = "x"
		}

		marker := ""
		if task.IsOverdue(today) {
			marker = "  OVERDUE"
		} else if task.IsSoon(today) {
			marker = "  soon"
		}

		fmt.Printf("[%s] %4d  %s  %-10s %-14s %s%s\n",
			status, task.ID, task.DueDate.Format(sqlite.DateLayout),
			task.TaskType, task.Subject, task.Title, marker)
	}
}
