package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/skyspeak/rouse/config"
	"github.com/skyspeak/rouse/internal/apperr"
	"github.com/skyspeak/rouse/internal/log"
	"github.com/skyspeak/rouse/internal/models"
	"github.com/skyspeak/rouse/internal/timeutil"
	"github.com/skyspeak/rouse/internal/ui"
	"github.com/skyspeak/rouse/store"
	"github.com/skyspeak/rouse/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envRouseNoColor = "ROUSE_NO_COLOR"
)

var errInvalidDays = &apperr.Error{
	Message: "days must be comma-separated weekday numbers between 0 (Sunday) and 6 (Saturday)",
}

// loadConfig reads the app-level configuration and applies command-line
// overrides on top of it.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	if ctx.Bool("no-sound") {
		cfg.Sound.Enabled = false
	}

	if ctx.Bool("no-notify") {
		cfg.Notifications.Enabled = false
	}

	return cfg, nil
}

// overrideWindow applies the --start-time, --end-time, and --days flags to
// the loaded routine document for this run only; the stored document is
// untouched.
func overrideWindow(ctx *cli.Context, settings *models.Settings) error {
	if start := ctx.String("start-time"); start != "" {
		if !timeutil.ValidClock(start) {
			return config.ErrInvalidClock
		}

		settings.Timer.StartTime = start
	}

	if end := ctx.String("end-time"); end != "" {
		if !timeutil.ValidClock(end) {
			return config.ErrInvalidClock
		}

		settings.Timer.EndTime = end
	}

	if days := ctx.String("days"); days != "" {
		parsed, err := parseDays(days)
		if err != nil {
			return err
		}

		settings.Timer.ActiveDays = parsed
	}

	return nil
}

func parseDays(s string) ([]int, error) {
	parts := strings.Split(s, ",")

	days := make([]int, 0, len(parts))

	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 0 || day > 6 {
			return nil, errInvalidDays
		}

		days = append(days, day)
	}

	return days, nil
}

// defaultAction runs the routine daemon until interrupted.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	t, err := timer.New(db, cfg)
	if err != nil {
		return err
	}

	if err = overrideWindow(ctx, t.Settings); err != nil {
		return err
	}

	slog.Debug(
		"routine document loaded",
		slog.String("document", spew.Sdump(t.Settings)),
	)

	if cfg.Sound.Enabled {
		if err := t.EnableSound(); err != nil {
			// run with visual cues only
			pterm.Warning.Printfln("unable to initialise audio: %v", err)
		}
	}

	runCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return t.Run(runCtx)
}

// importAction merges a JSON routine document from a file, or stdin when no
// file is named, into the stored document.
func importAction(ctx *cli.Context) error {
	var r io.Reader = os.Stdin

	if path := ctx.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		defer f.Close()

		r = f
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if err = db.Import(r); err != nil {
		return err
	}

	pterm.Success.Println("routine document imported")

	return nil
}

// exportAction writes the stored routine document as indented JSON to a
// file, or stdout when no file is named.
func exportAction(ctx *cli.Context) error {
	var w io.Writer = os.Stdout

	if path := ctx.Args().First(); path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		defer f.Close()

		w = f
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return db.Export(w)
}

// resetAction discards the stored routine document.
func resetAction(_ *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if err = db.Reset(); err != nil {
		return err
	}

	pterm.Success.Println("routine document reset to defaults")

	return nil
}

// stagesAction prints the configured stages with their trigger times.
func stagesAction(_ *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	settings, err := db.GetSettings()
	if err != nil {
		return err
	}

	data := [][]string{
		{"#", "MINUTE", "TIME", "INSTRUCTION", "AUDIO", "ENABLED"},
	}

	for i := range settings.Stages {
		stage := &settings.Stages[i]

		enabled := ui.Green("yes")
		if !stage.Enabled {
			enabled = ui.Red("no")
		}

		data = append(data, []string{
			strconv.Itoa(stage.ID),
			strconv.Itoa(stage.Minute),
			stageClock(settings.Timer.StartTime, stage.Minute),
			stage.Instruction,
			stage.Audio,
			enabled,
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// stageClock renders the wall-clock trigger time of a stage, or "?" when
// the window start is malformed.
func stageClock(start string, minute int) string {
	base, err := time.Parse(timeutil.ClockFormat, start)
	if err != nil {
		return "?"
	}

	return timeutil.Clock(base.Add(time.Duration(minute) * time.Minute))
}

// testCuesAction plays each enabled stage's announcement and audio cue once
// so the pipeline can be verified outside the activation window.
func testCuesAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	settings, err := db.GetSettings()
	if err != nil {
		return err
	}

	player := timer.NewSpeakerPlayer()
	if err = player.Unlock(); err != nil {
		return err
	}

	resolver := timer.NewResolver(
		player,
		[]string{config.AudioDirPath()},
		cfg.Sound.RemoteURLs,
		settings.Audio.Volume,
	)
	resolver.Enable()

	runCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	for i := range settings.Stages {
		stage := &settings.Stages[i]
		if !stage.Enabled {
			continue
		}

		if runCtx.Err() != nil {
			break
		}

		pterm.Info.Printfln(
			"stage %d: %s",
			stage.ID,
			ui.Highlight(stage.Instruction),
		)

		resolver.Play(runCtx, fmt.Sprintf("%d.mp3", stage.ID))
		resolver.Play(runCtx, stage.Audio)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if ROUSE_NO_COLOR is set
	if _, exists := os.LookupEnv(envRouseNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitializePaths()

	log.Init(config.LogFilePath(), ctx.Bool("verbose"))

	return nil
}
