package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyspeak/rouse/config"
	"github.com/skyspeak/rouse/internal/models"
)

type displayState struct {
	now       time.Time
	active    bool
	remaining time.Duration
	stage     *models.Stage
}

// displayRecorder captures what the daemon pushes to the status line.
type displayRecorder struct {
	mu    sync.Mutex
	ticks []displayState
}

func (d *displayRecorder) Tick(
	now time.Time,
	active bool,
	remaining time.Duration,
	stage *models.Stage,
) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ticks = append(d.ticks, displayState{now, active, remaining, stage})
}

func (d *displayRecorder) Flicker(bool) {}

func (d *displayRecorder) Refresh() {}

func (d *displayRecorder) last(t *testing.T) displayState {
	t.Helper()

	d.mu.Lock()
	defer d.mu.Unlock()

	require.NotEmpty(t, d.ticks)

	return d.ticks[len(d.ticks)-1]
}

// panickyOrch simulates a cue pipeline fault inside a tick.
type panickyOrch struct{}

func (panickyOrch) Trigger(*models.Stage)        { panic("cue pipeline fault") }
func (panickyOrch) TriggerWarning(*models.Stage) { panic("cue pipeline fault") }
func (panickyOrch) Cancel()                      {}

func newDaemonFixture(
	t *testing.T,
	now time.Time,
) (*Timer, *orchSink, *displayRecorder) {
	t.Helper()

	sink := &orchSink{}
	display := &displayRecorder{}

	return &Timer{
		Opts:     &config.Config{},
		Settings: testSettings(),
		sess:     NewSession(),
		orch:     sink,
		display:  display,
		now:      func() time.Time { return now },
	}, sink, display
}

func TestTick_ActivatesAndFiresOpeningStage(t *testing.T) {
	now := monday(7, 0, 30)
	tt, sink, display := newDaemonFixture(t, now)

	tt.tick()

	require.True(t, tt.sess.IsActive)
	assert.Equal(t, []int{1}, sink.triggers)

	state := display.last(t)
	assert.True(t, state.active)
	assert.Equal(t, now, state.now)
	assert.Equal(t, 42*time.Minute+30*time.Second, state.remaining)
	require.NotNil(t, state.stage)
	assert.Equal(t, 1, state.stage.ID)
}

func TestTick_InactiveOutsideWindow(t *testing.T) {
	tt, sink, display := newDaemonFixture(t, monday(6, 30, 0))

	tt.tick()

	assert.False(t, tt.sess.IsActive)
	assert.Empty(t, sink.triggers)

	state := display.last(t)
	assert.False(t, state.active)
	assert.Zero(t, state.remaining)
	assert.Nil(t, state.stage)
}

func TestTick_SurvivesCuePipelinePanic(t *testing.T) {
	tt, _, display := newDaemonFixture(t, monday(7, 0, 0))
	tt.orch = panickyOrch{}

	require.NotPanics(t, tt.tick)

	// the poisoned tick is dropped before the display update; the next
	// tick still runs
	assert.Empty(t, display.ticks)
	require.NotPanics(t, tt.tick)
}
