package app

import "github.com/urfave/cli/v2"

var (
	languageFlag = &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"lang"},
		Usage:   "Language of generated text: en or fa",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage backend: bolt or sqlite",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each saved session",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification after each saved session",
	}

	noNotifyFlag = &cli.BoolFlag{
		Name:  "no-notify",
		Usage: "Disable the desktop notification after each saved session",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start the timer in the past (e.g. '20 mins ago'). Must not be in the future",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the saved session",
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Hex colour of the saved session (e.g. #3B82F6)",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Keep updating the elapsed time until interrupted",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Only include sessions overlapping this day (e.g. 'yesterday', '2025-03-01')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort sessions by start (newest first) or name",
		Value: sortByStart,
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	faceFlag = &cli.StringFlag{
		Name:  "face",
		Usage: "Clock face to render: day, am or pm",
		Value: "day",
	}

	outFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write to this file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "File format: json or yaml. Inferred from the file extension when omitted",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the chart server",
	}

	openFlag = &cli.BoolFlag{
		Name:  "open",
		Usage: "Open the chart page in the default browser",
	}
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		languageFlag,
		driverFlag,
		dbFlag,
		noColorFlag,
		debugFlag,
		sessionCmdFlag,
		notifyFlag,
		noNotifyFlag,
	}
}
