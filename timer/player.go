package timer

import (
	"io"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const speakerBufferDivisor = 10

// SpeakerPlayer plays decoded audio through the system speaker.
type SpeakerPlayer struct {
	mu       sync.Mutex
	unlocked bool
}

// NewSpeakerPlayer returns the beep-backed player used outside of tests.
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{}
}

// Unlock initializes the system speaker. It is the explicit stand-in for
// the user-interaction media unlock: the playback gate only opens after it
// succeeds.
func (p *SpeakerPlayer) Unlock() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sampleRate := beep.SampleRate(44100)

	err := speaker.Init(
		sampleRate,
		sampleRate.N(time.Duration(int(time.Second)/speakerBufferDivisor)),
	)
	if err != nil {
		return err
	}

	p.unlocked = true

	return nil
}

// Play decodes the stream by file extension and starts playback at the
// given volume. A file without an extension is treated as OGG.
func (p *SpeakerPlayer) Play(
	name string,
	rc io.ReadCloser,
	volume float64,
) (<-chan struct{}, func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.unlocked {
		return nil, nil, errAudioDisabled
	}

	stream, format, err := decode(name, rc)
	if err != nil {
		return nil, nil, err
	}

	bufferSize := format.SampleRate.N(
		time.Duration(int(time.Second) / speakerBufferDivisor),
	)

	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		_ = stream.Close()
		return nil, nil, err
	}

	done := make(chan struct{})

	var once sync.Once

	stop := func() {
		once.Do(func() {
			speaker.Clear()

			// rewind so a retained stream never resumes mid-file
			_ = stream.Seek(0)
			_ = stream.Close()

			close(done)
		})
	}

	speaker.Play(beep.Seq(
		withVolume(stream, volume),
		beep.Callback(func() {
			once.Do(func() {
				_ = stream.Close()
				close(done)
			})
		}),
	))

	return done, stop, nil
}

func decode(
	name string,
	rc io.ReadCloser,
) (beep.StreamSeekCloser, beep.Format, error) {
	ext := filepath.Ext(name)
	// without extension, treat as OGG file
	if ext == "" {
		ext = ".ogg"
	}

	switch ext {
	case ".ogg":
		return vorbis.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		return flac.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	default:
		return nil, beep.Format{}, errInvalidSoundFormat
	}
}

// withVolume wraps the stream in a gain stage. The document stores volume
// as linear gain in [0,1]; effects.Volume expects an exponent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-4)),
		Silent:   volume <= 0,
	}
}
