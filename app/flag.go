package app

import "github.com/urfave/cli/v2"

var (
	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable all audio cues for this run",
	}

	noNotifyFlag = &cli.BoolFlag{
		Name:    "no-notify",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification shown when the routine window opens",
	}

	startTimeFlag = &cli.StringFlag{
		Name:    "start-time",
		Aliases: []string{"s"},
		Usage:   "Override the routine window start time for this run (HH:MM)",
	}

	endTimeFlag = &cli.StringFlag{
		Name:    "end-time",
		Aliases: []string{"e"},
		Usage:   "Override the routine window end time for this run (HH:MM)",
	}

	daysFlag = &cli.StringFlag{
		Name:  "days",
		Usage: "Override the active days for this run as comma-separated weekday numbers, 0 is Sunday (e.g. '1,2,3,4,5')",
	}

	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug-level detail, including every clock tick decision",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
