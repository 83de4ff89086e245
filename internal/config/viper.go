package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyDefaultColor   = "session.default_color"
	keyPalette        = "session.palette"
	keyLanguage       = "display.language"
	keyTwentyFourHour = "display.24hr_clock"
	keyDarkTheme      = "display.dark_theme"
	keyChartSize      = "chart.size"
	keyChartRadius    = "chart.radius"
	keyChartPort      = "chart.port"
	keyStorageDriver  = "storage.driver"
	keyStoragePath    = "storage.path"
	keySessionCmd     = "settings.cmd"
	keyNotify         = "settings.notify"
)

// DefaultPalette is the set of suggested session colours.
var DefaultPalette = []string{
	"#EF4444",
	"#F97316",
	"#EAB308",
	"#22C55E",
	"#3B82F6",
	"#8B5CF6",
	"#EC4899",
}

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath, writing it with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults. Values already present in c,
// such as first-run prompt answers, take precedence over the defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultColor, "#3B82F6")
	v.SetDefault(keyPalette, DefaultPalette)
	v.SetDefault(keyLanguage, "en")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyChartSize, 300)
	v.SetDefault(keyChartRadius, 120)
	v.SetDefault(keyChartPort, 1111)
	v.SetDefault(keyStorageDriver, "bolt")
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotify, false)

	if c.Session.DefaultColor != "" {
		v.Set(keyDefaultColor, c.Session.DefaultColor)
	}

	if c.Display.Language != "" {
		v.Set(keyLanguage, c.Display.Language)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
