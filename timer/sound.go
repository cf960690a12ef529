package timer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// maxPlayDuration is the safety cutoff for a single playback. It races the
// stream's natural end, so a file that never signals completion still
// releases the pipeline.
const maxPlayDuration = 60 * time.Second

// Player starts decoded playback of a named audio stream. The returned
// channel is closed when playback ends naturally; the stop function halts
// and rewinds playback early and must be safe to call more than once.
type Player interface {
	Play(name string, r io.ReadCloser, volume float64) (done <-chan struct{}, stop func(), err error)
}

// Resolver locates a logical audio filename across an ordered candidate
// list — the data directory, the working directory, and finally the remote
// fallback hosts — and plays the first candidate that loads. Playback
// failures advance to the next candidate; exhausting the list is logged,
// never surfaced as an error. At most one playback is ever active: starting
// a new one first stops the previous one.
type Resolver struct {
	player     Player
	localDirs  []string
	remoteURLs []string
	volume     float64
	maxPlay    time.Duration

	// open and fetch are seams for tests
	open  func(path string) (io.ReadCloser, error)
	fetch func(ctx context.Context, url string) (io.ReadCloser, error)

	enabled atomic.Bool

	mu      sync.Mutex
	stopCur func()
	playGen uint64
}

// NewResolver creates a resolver over the given local directories and
// remote base URLs. Volume is the document's playback volume in [0,1].
func NewResolver(
	player Player,
	localDirs, remoteURLs []string,
	volume float64,
) *Resolver {
	client := &http.Client{Timeout: 15 * time.Second}

	return &Resolver{
		player:     player,
		localDirs:  localDirs,
		remoteURLs: remoteURLs,
		volume:     volume,
		maxPlay:    maxPlayDuration,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		fetch: func(ctx context.Context, url string) (io.ReadCloser, error) {
			req, err := http.NewRequestWithContext(
				ctx,
				http.MethodGet,
				url,
				nil,
			)
			if err != nil {
				return nil, err
			}

			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}

			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return nil, errRemoteFetch
			}

			return resp.Body, nil
		},
	}
}

// Enable opens the playback gate. Before it is called every Play is a
// silent no-op, mirroring the user-interaction unlock the cue pipeline was
// designed around.
func (r *Resolver) Enable() {
	r.enabled.Store(true)
}

// Enabled reports whether the playback gate is open.
func (r *Resolver) Enabled() bool {
	return r.enabled.Load()
}

// Stop halts any in-flight playback. Safe to call when nothing is playing.
func (r *Resolver) Stop() {
	r.mu.Lock()
	stop := r.stopCur
	r.stopCur = nil
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Play resolves filename and blocks until playback finishes, hits the
// safety cutoff, or ctx is canceled. It never returns an error to the
// caller: every failure degrades to skipping the cue.
func (r *Resolver) Play(ctx context.Context, filename string) {
	if filename == "" {
		return
	}

	if !r.enabled.Load() {
		slog.Debug(
			"skipping cue, audio gate closed",
			slog.String("file", filename),
		)

		return
	}

	// at most one active playback
	r.Stop()

	for _, candidate := range r.candidates(filename) {
		if r.tryCandidate(ctx, filename, candidate) {
			return
		}
	}

	slog.Warn(
		"all audio candidates failed",
		slog.String("file", filename),
	)
}

type candidate struct {
	location string
	remote   bool
}

func (r *Resolver) candidates(filename string) []candidate {
	list := make([]candidate, 0, len(r.localDirs)+len(r.remoteURLs)+1)

	for _, dir := range r.localDirs {
		list = append(list, candidate{
			location: filepath.Join(dir, filename),
		})
	}

	list = append(list, candidate{location: filename})

	for _, base := range r.remoteURLs {
		list = append(list, candidate{
			location: base + "/" + filename,
			remote:   true,
		})
	}

	return list
}

// tryCandidate attempts one location. It reports true when playback was
// started and has settled (naturally, by cutoff, or by cancellation), and
// false when the candidate failed to load so the next one should be tried.
func (r *Resolver) tryCandidate(
	ctx context.Context,
	filename string,
	c candidate,
) bool {
	var (
		rc  io.ReadCloser
		err error
	)

	if c.remote {
		rc, err = r.fetch(ctx, c.location)
	} else {
		rc, err = r.open(c.location)
	}

	if err != nil {
		slog.Debug(
			"audio candidate unavailable",
			slog.String("location", c.location),
			slog.Any("error", err),
		)

		return false
	}

	done, stop, err := r.player.Play(filename, rc, r.volume)
	if err != nil {
		_ = rc.Close()

		slog.Debug(
			"audio candidate failed to play",
			slog.String("location", c.location),
			slog.Any("error", err),
		)

		return false
	}

	r.mu.Lock()
	r.playGen++
	gen := r.playGen
	r.stopCur = stop
	r.mu.Unlock()

	slog.Info(
		"playing audio",
		slog.String("file", filename),
		slog.String("location", c.location),
	)

	cutoff := time.NewTimer(r.maxPlay)
	defer cutoff.Stop()

	select {
	case <-done:
	case <-cutoff.C:
		slog.Warn(
			"audio playback hit safety cutoff",
			slog.String("file", filename),
			slog.Duration("cutoff", r.maxPlay),
		)

		stop()
	case <-ctx.Done():
		stop()
	}

	r.mu.Lock()
	if r.playGen == gen {
		r.stopCur = nil
	}
	r.mu.Unlock()

	return true
}
