package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/config"
)

// testToday is the fixed "today" used by the CLI tests
var testToday = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()

	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	apiInstance := api.NewWithClock(repo, func() time.Time { return testToday })
	return NewAppWithConfig(apiInstance, config.NewConfig())
}

func TestAppRun_NoArgsShowsUsage(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: dt")
}

func TestAppRun_UnknownCommand(t *testing.T) {
	app := newTestApp(t)

	err := app.Run([]string{"frobnicate"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: frobnicate")
}

func TestAppRun_DispatchesToCommand(t *testing.T) {
	app := newTestApp(t)

	err := app.Run([]string{"add", "Read chapter 4", "due=2026-03-12", "subject=Math", "type=homework"})

	assert.NoError(t, err)
}

func TestRegistryUsage_ListsAllCommands(t *testing.T) {
	app := newTestApp(t)

	usage := app.registry.GetUsage()

	for _, name := range []string{"add", "list", "subjects", "dashboard", "done", "undo", "edit", "delete", "serve"} {
		assert.Contains(t, usage, name)
	}
}

func TestParseFieldArgs(t *testing.T) {
	fields, positional := parseFieldArgs([]string{
		"Read", "chapter", "4", "due=2026-03-12", "subject=Linear Algebra", "desc=",
	})

	assert.Equal(t, []string{"Read", "chapter", "4"}, positional)
	assert.Equal(t, "2026-03-12", fields["due"])
	assert.Equal(t, "Linear Algebra", fields["subject"])
	assert.Equal(t, "", fields["desc"])
}

func TestParseFieldArgs_BareEqualsIsPositional(t *testing.T) {
	fields, positional := parseFieldArgs([]string{"=value"})

	assert.Empty(t, fields)
	assert.Equal(t, []string{"=value"}, positional)
}

func TestParseFieldArgs_Empty(t *testing.T) {
	fields, positional := parseFieldArgs(nil)

	assert.Empty(t, fields)
	assert.Empty(t, positional)
}
