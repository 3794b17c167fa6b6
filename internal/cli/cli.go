// Package cli holds the shared plumbing of the flowlist subcommands:
// app bootstrap, output formatting, exit codes and id resolution.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/flowlist/internal/app"
	"github.com/thenoetrevino/flowlist/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
	owned  bool // App was opened here and must be closed here
}

// NewCLI loads the user configuration and opens the task database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg := config.LoadOrDefault(slog.Default())

	application, err := app.Open(ctx, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
