// Package theme tracks the light/dark appearance preference and persists it.
package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/flowlist/internal/database"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// Source says where the initial theme came from
type Source string

const (
	SourceStored      Source = "stored"
	SourceEnvironment Source = "environment"
)

// LoadResult describes how Initialize settled on a theme
type LoadResult struct {
	Theme  models.Theme
	Source Source
	Err    error // read failure or ErrInvalidStoredTheme; never fatal
}

// PersistResult describes one write of the preference.
// Failures are swallowed; durability of the theme is best-effort.
type PersistResult struct {
	Theme models.Theme
	Err   error
}

// OK reports whether the write succeeded
func (p PersistResult) OK() bool {
	return p.Err == nil
}

// Option configures a Preference
type Option func(*Preference)

// WithLogger sets the logger for swallowed storage failures
func WithLogger(logger *slog.Logger) Option {
	return func(p *Preference) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDetector sets the environment preference signal
func WithDetector(d Detector) Option {
	return func(p *Preference) {
		if d != nil {
			p.detector = d
		}
	}
}

// Preference owns the current theme. Observers registered with Subscribe are
// called with every new value, so the presentation layer can restyle.
//
// Preference is not safe for concurrent use.
type Preference struct {
	kv        database.KeyValueStore
	detector  Detector
	logger    *slog.Logger
	current   models.Theme
	observers []func(models.Theme)
	load      LoadResult
}

// NewPreference creates an uninitialized preference holding ThemeLight.
// Call Initialize before use.
func NewPreference(kv database.KeyValueStore, opts ...Option) *Preference {
	p := &Preference{
		kv:       kv,
		detector: DefaultDetector(),
		logger:   slog.Default(),
		current:  models.ThemeLight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initialize adopts the stored theme when it is exactly light or dark,
// otherwise the environment preference. The result is persisted and
// announced to observers.
func (p *Preference) Initialize(ctx context.Context) (LoadResult, PersistResult) {
	res := LoadResult{Source: SourceEnvironment}

	raw, found, err := p.kv.Get(ctx, models.ThemeKey)
	switch {
	case err != nil:
		res.Err = fmt.Errorf("failed to read theme: %w", err)
		p.logger.Warn("Failed to access storage for theme", "error", err)
	case found && models.Theme(raw).Valid():
		res.Theme = models.Theme(raw)
		res.Source = SourceStored
	case found:
		res.Err = fmt.Errorf("%w: %q", ErrInvalidStoredTheme, raw)
	}

	if res.Source == SourceEnvironment {
		res.Theme = models.ThemeLight
		if p.detector.PrefersDark() {
			res.Theme = models.ThemeDark
		}
	}

	p.load = res
	return res, p.set(ctx, res.Theme)
}

// Toggle flips between light and dark
func (p *Preference) Toggle(ctx context.Context) (models.Theme, PersistResult) {
	next := p.current.Toggled()
	return next, p.set(ctx, next)
}

// Set assigns theme directly. Invalid values are rejected without any change.
func (p *Preference) Set(ctx context.Context, theme models.Theme) (PersistResult, error) {
	if !theme.Valid() {
		return PersistResult{Theme: p.current}, fmt.Errorf("%w '%s'", models.ErrInvalidTheme, theme)
	}
	return p.set(ctx, theme), nil
}

// Current returns the active theme
func (p *Preference) Current() models.Theme {
	return p.current
}

// LoadResult reports how Initialize chose the theme
func (p *Preference) LoadResult() LoadResult {
	return p.load
}

// Subscribe registers fn to be called with every new theme value.
// fn is invoked immediately with the current value.
func (p *Preference) Subscribe(fn func(models.Theme)) {
	if fn == nil {
		return
	}
	p.observers = append(p.observers, fn)
	fn(p.current)
}

func (p *Preference) set(ctx context.Context, theme models.Theme) PersistResult {
	p.current = theme
	for _, fn := range p.observers {
		fn(theme)
	}

	res := PersistResult{Theme: theme}
	if err := p.kv.Set(ctx, models.ThemeKey, string(theme)); err != nil {
		// Ignore storage errors
		res.Err = err
		p.logger.Debug("Failed to save theme", "theme", theme, "error", err)
	}
	return res
}
