package cli

import (
	"context"
	"fmt"

	"deadline-tracker/internal/api"
	"deadline-tracker/internal/config"
	"deadline-tracker/internal/web"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	api    api.API
	config *config.Config
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{
		api:    app.api,
		config: app.config,
	}
}

// Execute starts the web server and blocks until it stops. The listen
// address may be overridden with addr=:
//
//	dt serve
//	dt serve addr=:9090
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.config
	if cfg == nil {
		loaded, err := config.NewLoader().Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	fields, positional := parseFieldArgs(args)
	if len(positional) > 0 {
		return fmt.Errorf("usage: dt serve [addr=<listen address>]")
	}
	if addr, ok := fields["addr"]; ok && addr != "" {
		cfg.Server.Addr = addr
	}

	server, err := web.NewServer(c.api, cfg)
	if err != nil {
		return fmt.Errorf("failed to start web server: %w", err)
	}

	fmt.Printf("Serving on %s (auth mode: %s)\n", cfg.Server.Addr, cfg.Auth.Mode)
	return server.Listen()
}
