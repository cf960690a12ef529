package timer

import (
	"log/slog"
	"slices"
	"time"

	"github.com/skyspeak/rouse/internal/models"
	"github.com/skyspeak/rouse/internal/timeutil"
)

// isActiveDay reports whether now's weekday is one of the configured active
// days (0=Sunday).
func isActiveDay(settings *models.TimerSettings, now time.Time) bool {
	return slices.Contains(settings.ActiveDays, int(now.Weekday()))
}

// inWindow reports whether now's wall-clock time falls inside the window,
// inclusive on both ends. The zero-padded "HH:MM" format makes the string
// comparison chronological.
func inWindow(settings *models.TimerSettings, now time.Time) bool {
	clock := timeutil.Clock(now)

	return clock >= settings.StartTime && clock <= settings.EndTime
}

// findStage selects the first enabled stage in list order anchored at the
// given minute, then applies the dedup check to that selection. When
// several enabled stages share a minute, list order decides which one is
// eligible; the others never fire for that occurrence.
func findStage(stages []models.Stage, minute, lastID int) *models.Stage {
	for i := range stages {
		stage := &stages[i]
		if stage.Enabled && stage.Minute == minute {
			if stage.ID == lastID {
				return nil
			}

			return stage
		}
	}

	return nil
}

// evaluate runs the activation state machine for one tick. Entry requires
// both the day and the window check to pass; once active, only a failing
// check deactivates — the entry condition is not re-evaluated, so boundary
// jitter on a mid-window tick cannot cancel a running session.
func (t *Timer) evaluate(now time.Time) {
	activeDay := isActiveDay(&t.Settings.Timer, now)
	activeTime := inWindow(&t.Settings.Timer, now)

	if !t.sess.IsActive {
		if activeDay && activeTime {
			t.sess.activate()
			slog.Info(
				"routine window started",
				slog.String("start", t.Settings.Timer.StartTime),
				slog.String("end", t.Settings.Timer.EndTime),
			)
			t.notifyStart()
		}

		return
	}

	if !activeDay || !activeTime {
		t.sess.deactivate()
		t.orch.Cancel()
		slog.Info("routine window ended")
	}
}

// checkStages fires at most one warning and one main trigger for the
// current minute boundary. The dedup ids are updated before any playback
// begins, so a tick arriving during an in-flight sequence cannot re-fire
// the same stage.
func (t *Timer) checkStages(now time.Time) {
	windowStart := timeutil.WindowStart(now, t.Settings.Timer.StartTime)
	if windowStart.IsZero() {
		return
	}

	elapsed := timeutil.ElapsedMinutes(now, windowStart)
	if elapsed < 0 || elapsed > t.Settings.Timer.TotalDuration {
		return
	}

	// the warning announces the stage anchored one minute ahead
	if warned := findStage(
		t.Settings.Stages,
		elapsed+1,
		t.sess.LastWarningID,
	); warned != nil {
		t.sess.LastWarningID = warned.ID
		t.orch.TriggerWarning(warned)
	}

	if stage := findStage(
		t.Settings.Stages,
		elapsed,
		t.sess.LastTriggeredID,
	); stage != nil {
		t.sess.LastTriggeredID = stage.ID
		t.sess.CurrentStage = stage
		t.orch.Trigger(stage)
	}
}
