// Package config loads dayclock's settings from the config file, first-run
// prompts and command-line flags
package config

import (
	"io"
	"os"

	"github.com/ayoisaiah/dayclock/internal/pathutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session  SessionConfig  `mapstructure:"session"`
		Display  DisplayConfig  `mapstructure:"display"`
		Storage  StorageConfig  `mapstructure:"storage"`
		Settings SettingsConfig `mapstructure:"settings"`
		// PathToConfig is the file the settings were read from
		PathToConfig string `mapstructure:"-"`
		Chart        ChartConfig `mapstructure:"chart"`
		Debug        bool        `mapstructure:"-"`
	}

	// SessionConfig holds the defaults offered when saving a session
	SessionConfig struct {
		DefaultColor string   `mapstructure:"default_color"`
		Palette      []string `mapstructure:"palette"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Language       string `mapstructure:"language"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
		DarkTheme      bool   `mapstructure:"dark_theme"`
	}

	// ChartConfig holds the dimensions of rendered faces and the port of the
	// chart server
	ChartConfig struct {
		Size   int  `mapstructure:"size"`
		Radius int  `mapstructure:"radius"`
		Port   uint `mapstructure:"port"`
	}

	// StorageConfig selects the key-value backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// SettingsConfig holds post-save behaviour
	SettingsConfig struct {
		Cmd    string `mapstructure:"cmd"`
		Notify bool   `mapstructure:"notify"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// DBPath returns the configured database file, or the default location for
// the configured driver.
func (c *Config) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	return pathutil.DBFilePath(c.Storage.Driver)
}

// New creates a new Config and applies opts in order before validating the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
