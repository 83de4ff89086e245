// Package app wires dayclock's commands, flags and actions into a CLI
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/dayclock/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the dayclock app instance.
func Get() *cli.App {
	dayclockApp := &cli.App{
		Name: "dayclock",
		Usage: `
		Dayclock is a command-line activity timer. Start it when you begin
		something, stop it when you are done, and see where your day went on
		24-hour and 12-hour clock faces.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start the timer",
				Flags:  []cli.Flag{sinceFlag},
				Action: withEnv(startAction),
			},
			{
				Name:   "stop",
				Usage:  "Stop the timer and save the session",
				Flags:  []cli.Flag{nameFlag, colorFlag},
				Action: withEnv(stopAction),
			},
			{
				Name:   "cancel",
				Usage:  "Discard the running timer without saving it",
				Action: withEnv(cancelAction),
			},
			{
				Name:   "status",
				Usage:  "Print the elapsed time of the running timer",
				Flags:  []cli.Flag{watchFlag},
				Action: withEnv(statusAction),
			},
			{
				Name:   "list",
				Usage:  "List saved sessions, newest first",
				Flags:  []cli.Flag{dateFlag, sortFlag, jsonFlag},
				Action: withEnv(listAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more sessions by id",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    withEnv(deleteAction),
			},
			{
				Name:   "clear",
				Usage:  "Delete every saved session",
				Flags:  []cli.Flag{yesFlag},
				Action: withEnv(clearAction),
			},
			{
				Name:   "legend",
				Usage:  "Print the total time spent on each activity",
				Flags:  []cli.Flag{dateFlag, jsonFlag},
				Action: withEnv(legendAction),
			},
			{
				Name:   "chart",
				Usage:  "Render a clock face as SVG",
				Flags:  []cli.Flag{faceFlag, dateFlag, outFlag},
				Action: withEnv(chartAction),
			},
			{
				Name:   "serve",
				Usage:  "Show the legend and clock faces in the browser",
				Flags:  []cli.Flag{portFlag, openFlag, dateFlag},
				Action: withEnv(serveAction),
			},
			{
				Name:   "export",
				Usage:  "Write every saved session as JSON or yaml",
				Flags:  []cli.Flag{outFlag, formatFlag},
				Action: withEnv(exportAction),
			},
			{
				Name:      "import",
				Usage:     "Merge sessions from an exported file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{formatFlag},
				Action:    withEnv(importAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  globalFlags(),
		Action: withEnv(defaultAction),
		Before: beforeAction,
		After:  afterAction,
	}

	return dayclockApp
}
