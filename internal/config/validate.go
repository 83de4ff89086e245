package config

import (
	"regexp"
	"slices"

	"github.com/ayoisaiah/dayclock/internal/i18n"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	drivers = []string{"bolt", "sqlite"}

	maxPort uint = 65535
)

// IsHexColor reports whether s is a #RRGGBB colour code.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSession(); err != nil {
		return err
	}

	if !i18n.Supported(c.Display.Language) {
		return errUnsupportedLanguage.Fmt(c.Display.Language)
	}

	if !slices.Contains(drivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}

	return c.validateChart()
}

func (c *Config) validateSession() error {
	if !IsHexColor(c.Session.DefaultColor) {
		return errInvalidColor.Fmt("default", c.Session.DefaultColor)
	}

	for _, color := range c.Session.Palette {
		if !IsHexColor(color) {
			return errInvalidColor.Fmt("palette", color)
		}
	}

	return nil
}

func (c *Config) validateChart() error {
	if c.Chart.Size <= 0 {
		return errInvalidChartSize.Fmt(c.Chart.Size)
	}

	if c.Chart.Radius <= 0 || c.Chart.Radius*2 >= c.Chart.Size {
		return errInvalidRadius.Fmt(c.Chart.Radius, c.Chart.Size)
	}

	if c.Chart.Port == 0 || c.Chart.Port > maxPort {
		return errInvalidPort.Fmt(c.Chart.Port)
	}

	return nil
}
