package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/flowlist/internal/config/colors"
	"github.com/thenoetrevino/flowlist/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	appName = "flowlist"

	// ThemeFileEnv names an extra YAML file whose theme section is merged in
	ThemeFileEnv = "FLOWLIST_THEME_FILE"

	// DBPathEnv overrides storage.path
	DBPathEnv = "FLOWLIST_DB"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Palette     `yaml:"theme"`
	Storage     Storage     `yaml:"storage"`

	// PrefersDark overrides terminal background detection when set
	PrefersDark *bool `yaml:"prefers_dark,omitempty"`
}

// Storage configures where the database lives
type Storage struct {
	Path string `yaml:"path,omitempty"`
}

// Palette holds one color scheme per appearance
type Palette struct {
	Light colors.ColorScheme `yaml:"light"`
	Dark  colors.ColorScheme `yaml:"dark"`
}

// DefaultPalette returns the built-in light and dark schemes
func DefaultPalette() Palette {
	return Palette{
		Light: *colors.Light(),
		Dark:  *colors.Dark(),
	}
}

// For returns the scheme used when theme is active
func (p Palette) For(theme models.Theme) colors.ColorScheme {
	if theme.IsDark() {
		return p.Dark
	}
	return p.Light
}

// applyDefaults fills each scheme from its own preset
func (p *Palette) applyDefaults() {
	if p.Light.Preset == "" {
		p.Light.Preset = "light"
	}
	if p.Dark.Preset == "" {
		p.Dark.Preset = "dark"
	}
	p.Light.ApplyDefaults()
	p.Dark.ApplyDefaults()
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultPalette(),
	}
}

// DBPath returns the database path, honoring FLOWLIST_DB.
// An empty result means the database package default.
func (c *Config) DBPath() string {
	if p := os.Getenv(DBPathEnv); p != "" {
		return p
	}
	return c.Storage.Path
}

// loadThemeFile loads and merges theme from FLOWLIST_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Palette `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.Light.MergeFrom(themeConfig.Theme.Light)
		config.Theme.Dark.MergeFrom(themeConfig.Theme.Dark)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from FLOWLIST_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// LoadOrDefault loads the config and falls back to the defaults when the file
// cannot be read or parsed. Both front ends start either way; the reason is
// logged.
func LoadOrDefault(logger *slog.Logger) *Config {
	cfg, err := Load()
	if err == nil {
		return cfg
	}
	if logger == nil {
		logger = slog.Default()
	}
	path, _ := Path()
	logger.Warn("Failed to load config, using defaults", "path", path, "error", err)

	cfg = Default()
	loadThemeFile(cfg)
	return cfg
}

// Path returns where Load and Save look for the config file
func Path() (string, error) {
	return getConfigPath()
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}
