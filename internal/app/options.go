package app

import (
	"log/slog"

	"github.com/thenoetrevino/flowlist/internal/config"
	"github.com/thenoetrevino/flowlist/internal/services/theme"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg      *config.Config
	logger   *slog.Logger
	detector theme.Detector
	newID    func() string
}

// WithConfig sets the loaded user configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithDetector overrides how the dark preference is detected
func WithDetector(d theme.Detector) Option {
	return func(c *appConfig) {
		c.detector = d
	}
}

// WithIDGenerator replaces the task id generator
func WithIDGenerator(gen func() string) Option {
	return func(c *appConfig) {
		c.newID = gen
	}
}

func buildConfig(opts []Option) appConfig {
	c := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.detector == nil {
		c.detector = detectorFor(c.cfg)
	}
	return c
}

// detectorFor honors prefers_dark from the config file before probing
func detectorFor(cfg *config.Config) theme.Detector {
	if cfg.PrefersDark != nil {
		return theme.StaticDetector(*cfg.PrefersDark)
	}
	return theme.DefaultDetector()
}
