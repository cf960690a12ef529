package timer

import (
	"sync"
	"time"
)

const (
	flickerInterval = 150 * time.Millisecond
	// flickerToggles is 10 visible pulses: each pulse is an on toggle
	// followed by an off toggle.
	flickerToggles = 20
)

// Flicker pulses a visual "flash" state alongside a stage trigger. The
// effect is bounded: it runs a fixed number of toggles and then removes
// itself. Start cancels any running effect first, and Stop is safe to call
// when nothing is running.
type Flicker struct {
	render   func(on bool)
	interval time.Duration
	toggles  int

	mu     sync.Mutex
	cancel chan struct{}
}

// NewFlicker creates a flicker effect that reports its on/off state through
// render.
func NewFlicker(render func(on bool)) *Flicker {
	return &Flicker{
		render:   render,
		interval: flickerInterval,
		toggles:  flickerToggles,
	}
}

// Start begins the pulsing sequence, restarting from the beginning if one
// is already running.
func (f *Flicker) Start() {
	f.Stop()

	f.mu.Lock()
	cancel := make(chan struct{})
	f.cancel = cancel
	f.mu.Unlock()

	go f.run(cancel)
}

// Stop cancels a running effect and removes the visual state. Calling it
// when no effect is running is a no-op.
func (f *Flicker) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	close(cancel)
	f.render(false)
}

// Active reports whether a pulsing sequence is currently running.
func (f *Flicker) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cancel != nil
}

func (f *Flicker) run(cancel chan struct{}) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for count := 1; count <= f.toggles; count++ {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			f.render(count%2 == 1)
		}
	}

	f.finish(cancel)
}

// finish clears the effect after a full run, unless Stop already replaced
// or cleared the cancel channel.
func (f *Flicker) finish(cancel chan struct{}) {
	f.mu.Lock()
	if f.cancel == cancel {
		f.cancel = nil
	}
	f.mu.Unlock()

	f.render(false)
}
