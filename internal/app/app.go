package app

import (
	"context"
	"fmt"
	"io"

	"github.com/thenoetrevino/flowlist/internal/config"
	"github.com/thenoetrevino/flowlist/internal/database"
	"github.com/thenoetrevino/flowlist/internal/services/task"
	"github.com/thenoetrevino/flowlist/internal/services/theme"
)

// App holds all application services and provides dependency injection.
// Both front ends build one App and drive its stores.
type App struct {
	// Set when the App opened the database itself
	closer io.Closer

	Config *config.Config

	// Service layer
	Tasks *task.Store
	Theme *theme.Preference
}

// New creates an App over kv: the task list is loaded and the theme
// preference initialized.
func New(ctx context.Context, kv database.KeyValueStore, opts ...Option) *App {
	c := buildConfig(opts)

	taskOpts := []task.Option{task.WithLogger(c.logger)}
	if c.newID != nil {
		taskOpts = append(taskOpts, task.WithIDGenerator(c.newID))
	}

	a := &App{
		Config: c.cfg,
		Tasks:  task.NewStore(ctx, kv, taskOpts...),
		Theme: theme.NewPreference(kv,
			theme.WithLogger(c.logger),
			theme.WithDetector(c.detector),
		),
	}
	a.Theme.Initialize(ctx)

	return a
}

// Open opens the SQLite database named by the configuration and builds an App
// over it. Close releases the database.
func Open(ctx context.Context, opts ...Option) (*App, error) {
	c := buildConfig(opts)

	db, err := database.InitDB(ctx, c.cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	repo := database.NewRepository(db)

	a := New(ctx, repo, append(opts, WithConfig(c.cfg))...)
	a.closer = repo
	return a, nil
}

// Close releases the database, if the App opened one
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
