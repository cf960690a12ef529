package timer

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayer records Play calls and lets the test decide when playback
// completes.
type fakePlayer struct {
	mu      sync.Mutex
	names   []string
	volumes []float64
	stops   int
	err     error

	// finish closes the done channel of the most recent playback;
	// nil means playback completes immediately.
	hold bool
	done chan struct{}
}

func (f *fakePlayer) Play(
	name string,
	r io.ReadCloser,
	volume float64,
) (<-chan struct{}, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, nil, f.err
	}

	_ = r.Close()

	f.names = append(f.names, name)
	f.volumes = append(f.volumes, volume)

	done := make(chan struct{})
	f.done = done

	var once sync.Once

	stop := func() {
		f.mu.Lock()
		f.stops++
		f.mu.Unlock()

		once.Do(func() { close(done) })
	}

	if !f.hold {
		close(done)
	}

	return done, stop, nil
}

func (f *fakePlayer) played() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.names...)
}

func (f *fakePlayer) stopped() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stops
}

func newTestResolver(player Player) *Resolver {
	r := NewResolver(
		player,
		[]string{"/audio"},
		[]string{"https://cues.example.com/audio"},
		0.8,
	)
	r.Enable()

	return r
}

func TestResolverPlay_FallsThroughCandidates(t *testing.T) {
	player := &fakePlayer{}
	r := newTestResolver(player)

	var attempts []string

	r.open = func(path string) (io.ReadCloser, error) {
		attempts = append(attempts, path)
		return nil, errors.New("no such file")
	}
	r.fetch = func(_ context.Context, url string) (io.ReadCloser, error) {
		attempts = append(attempts, url)
		return io.NopCloser(strings.NewReader("ogg")), nil
	}

	r.Play(context.Background(), "3.mp3")

	assert.Equal(t, []string{
		"/audio/3.mp3",
		"3.mp3",
		"https://cues.example.com/audio/3.mp3",
	}, attempts)
	assert.Equal(t, []string{"3.mp3"}, player.played())
	assert.Equal(t, []float64{0.8}, player.volumes)
}

func TestResolverPlay_StopsAfterFirstSuccess(t *testing.T) {
	player := &fakePlayer{}
	r := newTestResolver(player)

	var attempts int

	r.open = func(path string) (io.ReadCloser, error) {
		attempts++
		return io.NopCloser(strings.NewReader("ogg")), nil
	}
	r.fetch = func(_ context.Context, _ string) (io.ReadCloser, error) {
		t.Fatal("remote fallback should not be reached")
		return nil, nil
	}

	r.Play(context.Background(), "chime.ogg")

	assert.Equal(t, 1, attempts)
	assert.Equal(t, []string{"chime.ogg"}, player.played())
}

func TestResolverPlay_ExhaustionIsSilent(t *testing.T) {
	player := &fakePlayer{}
	r := newTestResolver(player)

	r.open = func(string) (io.ReadCloser, error) {
		return nil, errors.New("no such file")
	}
	r.fetch = func(context.Context, string) (io.ReadCloser, error) {
		return nil, errRemoteFetch
	}

	// must return without panicking or blocking
	r.Play(context.Background(), "missing.ogg")

	assert.Empty(t, player.played())
}

func TestResolverPlay_DecoderFailureAdvances(t *testing.T) {
	player := &fakePlayer{err: errInvalidSoundFormat}
	r := newTestResolver(player)

	var attempts int

	r.open = func(string) (io.ReadCloser, error) {
		attempts++
		return io.NopCloser(strings.NewReader("not audio")), nil
	}
	r.fetch = func(context.Context, string) (io.ReadCloser, error) {
		attempts++
		return io.NopCloser(strings.NewReader("not audio")), nil
	}

	r.Play(context.Background(), "bad.ogg")

	// every candidate was offered to the player
	assert.Equal(t, 3, attempts)
}

func TestResolverPlay_EmptyFilenameIsNoop(t *testing.T) {
	player := &fakePlayer{}
	r := newTestResolver(player)

	r.open = func(string) (io.ReadCloser, error) {
		t.Fatal("no candidate should be opened")
		return nil, nil
	}

	r.Play(context.Background(), "")

	assert.Empty(t, player.played())
}

func TestResolverPlay_GateClosedSkipsPlayback(t *testing.T) {
	player := &fakePlayer{}
	r := NewResolver(player, nil, nil, 1.0)

	r.open = func(string) (io.ReadCloser, error) {
		t.Fatal("no candidate should be opened while gated")
		return nil, nil
	}

	require.False(t, r.Enabled())

	r.Play(context.Background(), "1.mp3")

	assert.Empty(t, player.played())
}

func TestResolverPlay_SafetyCutoff(t *testing.T) {
	player := &fakePlayer{hold: true}
	r := newTestResolver(player)
	r.maxPlay = 20 * time.Millisecond

	r.open = func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("ogg")), nil
	}

	start := time.Now()
	r.Play(context.Background(), "endless.ogg")

	assert.GreaterOrEqual(t, player.stopped(), 1)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestResolverPlay_ContextCancellationStops(t *testing.T) {
	player := &fakePlayer{hold: true}
	r := newTestResolver(player)

	r.open = func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("ogg")), nil
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	done := make(chan struct{})

	go func() {
		r.Play(ctx, "endless.ogg")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Play did not settle after cancellation")
	}

	assert.GreaterOrEqual(t, player.stopped(), 1)
}

func TestResolverStop_IdleIsSafe(t *testing.T) {
	r := newTestResolver(&fakePlayer{})

	r.Stop()
	r.Stop()
}
