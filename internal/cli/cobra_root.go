package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "dt",
		Short: "A command-line deadline tracking application",
		Long: `Deadline Tracker (dt) is an application for tracking academic tasks
and their due dates.

FEATURES:
  • Add tasks with a due date, subject, type, priority and description
  • List and filter tasks by subject, due-date range or completion
  • Dashboard grouping outstanding tasks into due-date buckets
  • Mark tasks done, undo, edit and delete them
  • Built-in web interface with optional login (dt serve)

EXAMPLES:
  dt add "Read chapter 4" due=2026-09-01 subject=Math type=homework
  dt list                                  # Outstanding tasks, soonest first
  dt list range=week                       # Tasks due within 7 days
  dt list subject=Math show_done=1         # All Math tasks, completed included
  dt dashboard                             # Bucketed overview
  dt done 12                               # Mark task 12 done
  dt edit 12 due=2026-09-15                # Move a deadline
  dt serve                                 # Start the web interface

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    DT_DB_DIR                              Database directory (default: ~/.dt)
    DT_DB_FILENAME                         Database filename (default: dt.db)
    DT_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)

  Server Configuration:
    DT_SERVER_ADDR                         Web listen address (default: :8080)
    DT_SESSION_EXPIRY                      Login session lifetime (default: 24h)

  Auth Configuration:
    DT_AUTH_MODE                           none, shared or users (default: none)
    DT_AUTH_USERNAME                       Username for shared mode
    DT_AUTH_PASSWORD                       Password for shared mode

  Application Configuration:
    DT_APP_TIMEOUT                         Application timeout (default: 60s)
    DT_APP_VERBOSE                         Enable verbose output (default: false)

DATE FORMAT:
  Due dates always use YYYY-MM-DD.

GETTING HELP:
  dt [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides DT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides DT_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides DT_DB_QUERY_TIMEOUT)")

	flags.String("server-addr", "", "Web listen address (overrides DT_SERVER_ADDR)")
	flags.Duration("session-expiry", 0, "Login session lifetime (overrides DT_SESSION_EXPIRY)")
	flags.String("auth-mode", "", "Auth mode: none, shared or users (overrides DT_AUTH_MODE)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides DT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides DT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <title> due=YYYY-MM-DD subject=<subject> type=<type>",
		Short: "Add a new task",
		Long: `Add a new task. The title is taken from the positional words; the
remaining fields use key=value form.

Required fields: due, subject, type
Optional fields: priority (required|optional, default required), desc

Examples:
  dt add "Read chapter 4" due=2026-09-01 subject=Math type=homework
  dt add Essay draft due=2026-09-10 subject=History type=essay priority=optional`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			addHandler := NewAddCommand(NewAppWithConfig(r.api, r.config))
			return addHandler.Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [subject=...] [range=...] [show_done=1]",
		Short: "List tasks",
		Long: `List tasks sorted by due date, soonest first. Completed tasks are
hidden unless show_done=1 is given.

Range tokens: overdue, today, week, two_weeks, later. A range filter always
restricts to outstanding tasks; unknown tokens are ignored.

Examples:
  dt list                         # Outstanding tasks
  dt list show_done=1             # Everything, completed included
  dt list subject="Linear Algebra"
  dt list range=two_weeks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			listHandler := NewListCommand(NewAppWithConfig(r.api, r.config))
			return listHandler.Execute(ctx, args)
		},
	}

	subjectsCmd := &cobra.Command{
		Use:   "subjects",
		Short: "List distinct subjects",
		Long:  "List every subject that appears on a task, in alphabetical order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			subjectsHandler := NewSubjectsCommand(NewAppWithConfig(r.api, r.config))
			return subjectsHandler.Execute(ctx, args)
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show outstanding tasks grouped by due date",
		Long: `Show every outstanding task grouped into buckets: overdue, due today,
due within 7 days, due within 14 days, and later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			dashboardHandler := NewDashboardCommand(NewAppWithConfig(r.api, r.config))
			return dashboardHandler.Execute(ctx, args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			doneHandler := NewDoneCommand(NewAppWithConfig(r.api, r.config))
			return doneHandler.Execute(ctx, args)
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark a task outstanding again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			undoHandler := NewUndoCommand(NewAppWithConfig(r.api, r.config))
			return undoHandler.Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id> [field=value ...]",
		Short: "Edit a task",
		Long: `Edit a task. Fields not mentioned keep their current value.

Fields: title, due, subject, type, priority, desc

Examples:
  dt edit 12 due=2026-09-15
  dt edit 12 title="Read chapter 5" priority=optional`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			editHandler := NewEditCommand(NewAppWithConfig(r.api, r.config))
			return editHandler.Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task permanently. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			deleteHandler := NewDeleteCommand(NewAppWithConfig(r.api, r.config))
			return deleteHandler.Execute(ctx, args)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve [addr=<listen address>]",
		Short: "Start the web interface",
		Long: `Start the web interface on the configured address and block until the
process is stopped. The auth mode (DT_AUTH_MODE) decides whether a login
is required.

Examples:
  dt serve
  dt serve addr=:9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The server manages its own lifetime; no command timeout here.
			serveHandler := NewServeCommand(NewAppWithConfig(r.api, r.config))
			return serveHandler.Execute(context.Background(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		subjectsCmd,
		dashboardCmd,
		doneCmd,
		undoCmd,
		editCmd,
		deleteCmd,
		serveCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}

	if serverAddr, _ := flags.GetString("server-addr"); serverAddr != "" {
		r.config.Server.Addr = serverAddr
	}
	if sessionExpiry, _ := flags.GetDuration("session-expiry"); sessionExpiry > 0 {
		r.config.Server.SessionExpiry = sessionExpiry
	}
	if authMode, _ := flags.GetString("auth-mode"); authMode != "" {
		mode, ok := config.ParseAuthMode(authMode)
		if !ok {
			return fmt.Errorf("invalid auth mode: %s (must be none, shared or users)", authMode)
		}
		r.config.Auth.Mode = mode
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
