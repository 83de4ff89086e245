package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Language   string
	Driver     string
	DBPath     string
	SessionCmd string
	Notify     bool
	NoNotify   bool
	Debug      bool
}

// WithCLIConfig returns an Option that overrides settings with the global
// command-line flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Language:   ctx.String("language"),
			Driver:     ctx.String("driver"),
			DBPath:     ctx.String("db"),
			SessionCmd: ctx.String("session-cmd"),
			Notify:     ctx.Bool("notify"),
			NoNotify:   ctx.Bool("no-notify"),
			Debug:      ctx.Bool("debug"),
		}

		applyCLIOptions(c, &opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts *CLIOptions) {
	if opts.Language != "" {
		c.Display.Language = opts.Language
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DBPath != "" {
		c.Storage.Path = opts.DBPath
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Notify {
		c.Settings.Notify = true
	}

	if opts.NoNotify {
		c.Settings.Notify = false
	}

	c.Debug = opts.Debug
}
