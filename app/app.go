package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/skyspeak/rouse/config"
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

// Get retrieves the rouse app instance.
func Get() *cli.App {
	rouseApp := &cli.App{
		Name: "rouse",
		Usage: `
		Rouse is a morning routine timer for the command-line. During a daily
		activation window it walks you through a sequence of timed stages,
		announcing each one with a visual flash, a spoken instruction, and an
		audio cue.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Merge a routine document from a JSON file (or stdin) into the stored one",
				UsageText: "rouse import [FILE]",
				Action:    importAction,
			},
			{
				Name:      "export",
				Usage:     "Write the stored routine document as indented JSON to a file (or stdout)",
				UsageText: "rouse export [FILE]",
				Action:    exportAction,
			},
			{
				Name:   "reset",
				Usage:  "Discard the stored routine document and return to the built-in defaults",
				Action: resetAction,
			},
			{
				Name:   "stages",
				Usage:  "List the configured stages and their trigger times",
				Action: stagesAction,
			},
			{
				Name:   "test-cues",
				Usage:  "Play every enabled stage's announcement and audio cue once",
				Action: testCuesAction,
				Flags: []cli.Flag{
					verboseFlag,
				},
			},
		},
		Flags: []cli.Flag{
			noSoundFlag,
			noNotifyFlag,
			startTimeFlag,
			endTimeFlag,
			daysFlag,
			verboseFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return rouseApp
}
