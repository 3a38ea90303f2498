// Package config loads the toolkit's user configuration: theme
// selection, window defaults, logging and accessibility switches.
// Missing files fall back to defaults; unknown keys are errors.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WindowConfig sets the initial window geometry and title.
type WindowConfig struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	// File is a path to a theme document (.json, .yaml). Empty means
	// the built-in theme.
	File string `yaml:"file,omitempty"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// File receives log output; empty logs to stderr.
	File string `yaml:"file,omitempty"`
}

// AccessibilityConfig controls the screen-reader bridge.
type AccessibilityConfig struct {
	// Announcements turns spoken announcements on or off.
	Announcements *bool `yaml:"announcements,omitempty"`
}

// Config is the effective configuration after applying defaults.
type Config struct {
	Window        WindowConfig        `yaml:"window,omitempty"`
	Theme         ThemeConfig         `yaml:"theme,omitempty"`
	Logging       LoggingConfig       `yaml:"logging,omitempty"`
	Accessibility AccessibilityConfig `yaml:"accessibility,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Window:  WindowConfig{Title: "oak", Width: 800, Height: 600},
		Logging: LoggingConfig{Level: "info"},
	}
}

// AnnouncementsEnabled reports the accessibility announcement switch,
// defaulting to on.
func (c *Config) AnnouncementsEnabled() bool {
	if c.Accessibility.Announcements == nil {
		return true
	}
	return *c.Accessibility.Announcements
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultConfigPath returns ~/.config/oak/config.yaml.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "oak", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "oak", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration at path, overlaying it onto the
// defaults. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
