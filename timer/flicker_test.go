package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderRecorder collects the on/off frames emitted by the effect.
type renderRecorder struct {
	mu     sync.Mutex
	frames []bool
}

func (r *renderRecorder) render(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = append(r.frames, on)
}

func (r *renderRecorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]bool(nil), r.frames...)
}

func waitInactive(t *testing.T, f *Flicker) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for f.Active() {
		if time.Now().After(deadline) {
			t.Fatal("flicker did not finish in time")
		}

		time.Sleep(time.Millisecond)
	}
}

func TestFlicker_RunsBoundedSequence(t *testing.T) {
	rec := &renderRecorder{}
	f := NewFlicker(rec.render)
	f.interval = time.Millisecond

	f.Start()
	require.True(t, f.Active())

	waitInactive(t, f)

	frames := rec.snapshot()

	// the fixed toggle count plus the trailing clear frame
	require.Len(t, frames, flickerToggles+1)

	assert.True(t, frames[0], "sequence starts with the on frame")
	assert.False(t, frames[len(frames)-1], "sequence ends cleared")

	for i := 1; i < len(frames)-1; i++ {
		assert.NotEqual(t, frames[i-1], frames[i], "frames alternate")
	}
}

func TestFlicker_StopClearsEarly(t *testing.T) {
	rec := &renderRecorder{}
	f := NewFlicker(rec.render)
	f.interval = time.Hour // effectively frozen

	f.Start()
	require.True(t, f.Active())

	f.Stop()

	assert.False(t, f.Active())

	frames := rec.snapshot()
	require.NotEmpty(t, frames)
	assert.False(t, frames[len(frames)-1])
}

func TestFlicker_StopWhenIdleIsNoop(t *testing.T) {
	rec := &renderRecorder{}
	f := NewFlicker(rec.render)

	f.Stop()
	f.Stop()

	assert.Empty(t, rec.snapshot())
}

func TestFlicker_StartRestarts(t *testing.T) {
	rec := &renderRecorder{}
	f := NewFlicker(rec.render)
	f.interval = time.Millisecond

	f.Start()
	f.Start()

	require.True(t, f.Active())
	waitInactive(t, f)
}
