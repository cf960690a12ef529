package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skyspeak/rouse/config"
	"github.com/skyspeak/rouse/internal/models"
	"github.com/skyspeak/rouse/internal/speech"
)

const (
	announceRepeats = 3
	cuePause        = 200 * time.Millisecond
	speechPause     = 1 * time.Second
	triggerBacklog  = 8
)

// Orchestrator runs the cue pipeline for triggered stages. Sequences are
// serialized: triggers are queued and each one runs to completion before
// the next begins, so a later stage can never talk over an earlier one.
// Every step degrades gracefully — a failed cue never blocks the steps
// after it.
type Orchestrator struct {
	resolver *Resolver
	speaker  speech.Speaker
	flicker  *Flicker
	profile  speech.Profile
	opts     *config.Config
	refresh  func()
	queue    chan *models.Stage

	cueGap    time.Duration
	speechGap time.Duration
}

// NewOrchestrator wires the cue pipeline. The refresh callback is invoked
// after each completed sequence so the display can pick up the new stage.
func NewOrchestrator(
	resolver *Resolver,
	speaker speech.Speaker,
	flicker *Flicker,
	profile speech.Profile,
	opts *config.Config,
	refresh func(),
) *Orchestrator {
	if refresh == nil {
		refresh = func() {}
	}

	return &Orchestrator{
		resolver: resolver,
		speaker:  speaker,
		flicker:  flicker,
		profile:  profile,
		opts:     opts,
		refresh:  refresh,
		queue:    make(chan *models.Stage, triggerBacklog),

		cueGap:    cuePause,
		speechGap: speechPause,
	}
}

// Start launches the sequence worker. It returns immediately.
func (o *Orchestrator) Start(ctx context.Context) {
	go o.work(ctx)
}

// Trigger queues the cue sequence for a stage. It never blocks the caller;
// if the backlog is full the trigger is dropped with a log entry.
func (o *Orchestrator) Trigger(stage *models.Stage) {
	select {
	case o.queue <- stage:
	default:
		slog.Warn(
			"stage trigger dropped, sequence backlog full",
			slog.Int("stage", stage.ID),
		)
	}
}

// TriggerWarning announces that a stage begins in one minute. It logs the
// advisory and, when spoken warnings are configured, also voices it in the
// background. Stage state and the flicker effect are untouched.
func (o *Orchestrator) TriggerWarning(stage *models.Stage) {
	message := fmt.Sprintf("60 seconds until: %s", stage.Instruction)

	slog.Info(
		"stage warning",
		slog.Int("stage", stage.ID),
		slog.String("message", message),
	)

	if o.opts.Speech.SpokenWarnings && o.opts.Speech.Enabled {
		go func() {
			if err := o.speaker.Speak(
				context.Background(),
				message,
				o.profile,
			); err != nil {
				slog.Error(
					"warning speech failed",
					slog.Any("error", err),
				)
			}
		}()
	}
}

// Cancel stops the flicker effect and any in-flight playback, and discards
// queued sequences. It is invoked on the active-to-inactive transition.
func (o *Orchestrator) Cancel() {
	o.flicker.Stop()
	o.resolver.Stop()

	for {
		select {
		case <-o.queue:
		default:
			return
		}
	}
}

func (o *Orchestrator) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case stage := <-o.queue:
			o.run(ctx, stage)
		}
	}
}

// run executes one full cue sequence: flicker, the three-fold stage
// announcement, then the stage's own audio file.
func (o *Orchestrator) run(ctx context.Context, stage *models.Stage) {
	slog.Info(
		"stage triggered",
		slog.Int("stage", stage.ID),
		slog.Int("minute", stage.Minute),
		slog.String("instruction", stage.Instruction),
	)

	o.flicker.Start()

	o.announce(ctx, stage)

	if stage.Audio != "" {
		o.resolver.Play(ctx, stage.Audio)
	}

	o.refresh()
}

// announce identifies the stage three times, either with the numbered
// alert asset or by speaking the instruction in the calming voice.
func (o *Orchestrator) announce(ctx context.Context, stage *models.Stage) {
	speak := o.opts.Sound.AnnounceMode == config.AnnounceSpeech &&
		o.opts.Speech.Enabled

	pause := o.cueGap
	if speak {
		pause = o.speechGap
	}

	calming := o.profile.Calming()

	for repeat := 1; repeat <= announceRepeats; repeat++ {
		if ctx.Err() != nil {
			return
		}

		if speak {
			err := o.speaker.Speak(ctx, stage.Instruction, calming)
			if err != nil {
				// synthesis failure counts as completion
				slog.Error(
					"instruction speech failed",
					slog.Int("stage", stage.ID),
					slog.Any("error", err),
				)
			}
		} else {
			o.resolver.Play(ctx, fmt.Sprintf("%d.mp3", stage.ID))
		}

		if repeat < announceRepeats {
			select {
			case <-ctx.Done():
				return
			case <-time.After(pause):
			}
		}
	}
}
