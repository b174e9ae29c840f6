package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
)

// SubjectsCommand handles the subjects command
type SubjectsCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewSubjectsCommand creates a new subjects command handler
func NewSubjectsCommand(app *App) *SubjectsCommand {
	return &SubjectsCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the distinct subjects in alphabetical order
func (c *SubjectsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: dt subjects")
	}

	subjects, err := c.api.Subjects(ctx, c.scope)
	if err != nil {
		return c.errorHandler.Handle("list subjects", err)
	}

	if len(subjects) == 0 {
		fmt.Println("No subjects found")
		return nil
	}

	for _, subject := range subjects {
		fmt.Println(subject)
	}
	return nil
}
