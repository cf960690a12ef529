package timer

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"

	"github.com/skyspeak/rouse/config"
	"github.com/skyspeak/rouse/internal/models"
	"github.com/skyspeak/rouse/internal/speech"
	"github.com/skyspeak/rouse/internal/timeutil"
	"github.com/skyspeak/rouse/internal/ui"
	"github.com/skyspeak/rouse/store"
)

// triggerer is the scheduler's view of the cue pipeline.
type triggerer interface {
	Trigger(stage *models.Stage)
	TriggerWarning(stage *models.Stage)
	Cancel()
}

// Timer is the long-running daemon. It samples the wall clock on a fixed
// interval, drives the activation state machine, and hands triggered
// stages to the orchestrator.
type Timer struct {
	db       store.DB
	Opts     *config.Config
	Settings *models.Settings

	sess     *Session
	orch     triggerer
	resolver *Resolver
	player   *SpeakerPlayer
	display  Display

	now func() time.Time
}

// New loads the persisted routine and assembles the daemon.
func New(db store.DB, cfg *config.Config) (*Timer, error) {
	settings, err := db.GetSettings()
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	player := NewSpeakerPlayer()

	resolver := NewResolver(
		player,
		[]string{config.AudioDirPath()},
		cfg.Sound.RemoteURLs,
		settings.Audio.Volume,
	)

	display := NewConsoleDisplay(cfg.Display.TwentyFourHour)

	t := &Timer{
		db:       db,
		Opts:     cfg,
		Settings: &settings,
		sess:     NewSession(),
		resolver: resolver,
		player:   player,
		display:  display,
		now:      time.Now,
	}

	t.orch = NewOrchestrator(
		resolver,
		speech.NewExecSpeaker(cfg.Speech.Command),
		NewFlicker(display.Flicker),
		speech.NewProfile(settings.TTS),
		cfg,
		display.Refresh,
	)

	return t, nil
}

// EnableSound initialises the audio device and opens the playback gate.
// Until this is called, every cue resolves silently.
func (t *Timer) EnableSound() error {
	if err := t.player.Unlock(); err != nil {
		return err
	}

	t.resolver.Enable()

	return nil
}

// Run blocks, sampling the clock until ctx is canceled.
func (t *Timer) Run(ctx context.Context) error {
	if o, ok := t.orch.(*Orchestrator); ok {
		o.Start(ctx)
	}

	slog.Info(
		"daemon started",
		slog.String("window_start", t.Settings.Timer.StartTime),
		slog.String("window_end", t.Settings.Timer.EndTime),
		slog.Duration("tick", t.Opts.Daemon.TickInterval),
	)

	t.tick()

	ticker := time.NewTicker(t.Opts.Daemon.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.orch.Cancel()
			slog.Info("daemon stopped")

			return nil
		case <-ticker.C:
			t.tick()
		}
	}
}

// tick processes one clock sample. A panic in a single tick is logged and
// swallowed so a bad sample cannot take the daemon down.
func (t *Timer) tick() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error(
				"tick panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	now := t.now()
	t.sess.CurrentTime = now

	t.evaluate(now)

	if t.sess.IsActive {
		t.checkStages(now)
	}

	t.updateDisplay(now)
}

func (t *Timer) updateDisplay(now time.Time) {
	var remaining time.Duration

	if t.sess.IsActive {
		windowStart := timeutil.WindowStart(now, t.Settings.Timer.StartTime)
		if !windowStart.IsZero() {
			end := windowStart.Add(
				time.Duration(t.Settings.Timer.TotalDuration) * time.Minute,
			)
			remaining = end.Sub(now)
		}
	}

	t.display.Tick(now, t.sess.IsActive, remaining, t.sess.CurrentStage)
}

// notifyStart raises a desktop notification when the routine window opens.
func (t *Timer) notifyStart() {
	if !t.Opts.Notifications.Enabled {
		return
	}

	configDir := filepath.Base(config.Dir())

	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(configDir, "static", "icon.png"),
	)

	err := beeep.Notify(
		"Morning routine",
		"Your routine window has started",
		pathToIcon,
	)
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}
