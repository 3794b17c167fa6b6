// Package launcher starts the terminal UI with its storage and configuration.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/flowlist/internal/app"
	"github.com/thenoetrevino/flowlist/internal/config"
	"github.com/thenoetrevino/flowlist/internal/tui"
)

// Launch opens the task database and runs the TUI until the user quits or
// ctx is cancelled
func Launch(ctx context.Context) error {
	cfg := config.LoadOrDefault(slog.Default())

	application, err := app.Open(ctx, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("starting flowlist",
		"db", cfg.DBPath(),
		"theme", application.Theme.Current(),
		"tasks", len(application.Tasks.Tasks()),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- tui.Run(ctx, application)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Let the program restore the terminal before the database closes
		<-errChan
		return nil
	}
}
