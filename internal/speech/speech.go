// Package speech synthesizes spoken instructions through an external
// synthesizer command.
package speech

import (
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/skyspeak/rouse/internal/apperr"
	"github.com/skyspeak/rouse/internal/models"
)

var errEmptyCommand = &apperr.Error{
	Message: "no speech synthesizer command is configured",
}

// Speaker voices a piece of text and returns when the utterance ends.
// Synthesis failure is reported as an error but callers treat it the same
// as natural completion.
type Speaker interface {
	Speak(ctx context.Context, text string, p Profile) error
}

// Profile is a voice profile: the normalized rate/pitch/volume knobs from
// the routine document plus a voice identifier.
type Profile struct {
	Voice  string
	Rate   float64
	Pitch  float64
	Volume float64
}

// NewProfile builds a Profile from the document's speech settings.
func NewProfile(tts models.TTSSettings) Profile {
	return Profile{
		Voice:  tts.Voice,
		Rate:   tts.Rate,
		Pitch:  tts.Pitch,
		Volume: tts.Volume,
	}
}

// Calming derives the announcement variant of p: slower, slightly higher
// pitched, and switched to a female voice variant when the configured voice
// doesn't already name one.
func (p Profile) Calming() Profile {
	out := p
	out.Rate = p.Rate * 0.85
	out.Pitch = math.Min(p.Pitch+0.1, 2.0)

	if !strings.Contains(out.Voice, "+f") &&
		!strings.Contains(strings.ToLower(out.Voice), "female") {
		voice := out.Voice
		if voice == "" || voice == "default" {
			voice = "en"
		}

		out.Voice = voice + "+f3"
	}

	return out
}

// ExecSpeaker shells out to a synthesizer command. The command is a
// template; the placeholders {text}, {rate}, {pitch}, {volume}, and {voice}
// are substituted into the split argument list, so quoting in the template
// behaves like a shell.
type ExecSpeaker struct {
	command string
}

// NewExecSpeaker returns a Speaker driving the given command template.
func NewExecSpeaker(command string) *ExecSpeaker {
	return &ExecSpeaker{command: command}
}

// Speak runs the synthesizer and blocks until it exits or ctx is canceled.
func (s *ExecSpeaker) Speak(
	ctx context.Context,
	text string,
	p Profile,
) error {
	argv, err := s.buildArgv(text, p)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	return cmd.Run()
}

func (s *ExecSpeaker) buildArgv(text string, p Profile) ([]string, error) {
	if strings.TrimSpace(s.command) == "" {
		return nil, errEmptyCommand
	}

	tokens, err := shellquote.Split(s.command)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, errEmptyCommand
	}

	voice := p.Voice
	if voice == "" || voice == "default" {
		voice = "en"
	}

	replacer := strings.NewReplacer(
		"{text}", text,
		"{rate}", strconv.Itoa(wordsPerMinute(p.Rate)),
		"{pitch}", strconv.Itoa(pitchLevel(p.Pitch)),
		"{volume}", strconv.Itoa(amplitude(p.Volume)),
		"{voice}", voice,
	)

	argv := make([]string, len(tokens))
	for i, tok := range tokens {
		argv[i] = replacer.Replace(tok)
	}

	return argv, nil
}

// espeak-style scales: the document stores browser-normalized values where
// 1.0 is the neutral setting.

func wordsPerMinute(rate float64) int {
	return clamp(int(math.Round(rate*175)), 80, 450)
}

func pitchLevel(pitch float64) int {
	return clamp(int(math.Round(pitch*50)), 0, 99)
}

func amplitude(volume float64) int {
	return clamp(int(math.Round(volume*100)), 0, 200)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
