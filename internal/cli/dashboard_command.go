package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/domain"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	api          api.API
	scope        api.Scope
	errorHandler *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{
		api:          app.api,
		scope:        app.scope(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the outstanding tasks grouped into due-date buckets
func (c *DashboardCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: dt dashboard")
	}

	overview, err := c.api.Dashboard(ctx, c.scope)
	if err != nil {
		return c.errorHandler.Handle("load dashboard", err)
	}

	if overview.Total() == 0 {
		fmt.Println("Nothing outstanding")
		return nil
	}

	sections := []struct {
		heading string
		tasks   []*domain.Task
	}{
		{"Overdue", overview.Overdue},
		{"Due today", overview.Today},
		{"Next 7 days", overview.Week},
		{"Next 14 days", overview.TwoWeeks},
		{"Later", overview.Later},
	}

	for _, section := range sections {
		if len(section.tasks) == 0 {
			continue
		}
		fmt.Printf("%s (%d):\n", section.heading, len(section.tasks))
		printTaskLines(section.tasks)
		fmt.Println()
	}
	return nil
}
