// Package models defines the persisted routine document and its sections.
// The JSON field names mirror the document format that existing exports use,
// so imports from older installations keep working.
package models

// TimerSettings describes the daily active window.
type TimerSettings struct {
	// StartTime and EndTime are zero-padded "HH:MM" wall-clock strings.
	// Window comparisons are lexicographic and inclusive on both ends.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	// ActiveDays holds weekday numbers, 0=Sunday through 6=Saturday.
	ActiveDays []int `json:"activeDays"`
	// TotalDuration is the window length in minutes. Elapsed minutes
	// beyond it never trigger a stage.
	TotalDuration int `json:"totalDuration"`
}

// Stage is a single scheduled event anchored at a minute offset from the
// window start.
type Stage struct {
	// ID is a stable positive identity used as the trigger dedup key.
	ID int `json:"id"`
	// Minute is the offset from window start at which the stage fires.
	Minute int `json:"minute"`
	// Duration is informational only and does not end playback.
	Duration int `json:"duration"`
	// Color is applied as a background signal while the stage is current.
	Color       string `json:"color"`
	Instruction string `json:"instruction"`
	// Audio is a logical filename resolved through the media candidate
	// list. Empty means no stage audio.
	Audio   string `json:"audio"`
	Enabled bool   `json:"enabled"`
}

// TTSSettings configures the speech collaborator.
type TTSSettings struct {
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
	// Voice is a synthesizer voice identifier, or "default".
	Voice string `json:"voice"`
}

// AudioSettings configures cue playback. FadeIn and FadeOut are stored and
// round-tripped but not applied by playback.
type AudioSettings struct {
	Volume  float64 `json:"volume"`
	FadeIn  int     `json:"fadeIn"`
	FadeOut int     `json:"fadeOut"`
}

// Settings is the complete routine document persisted under a single key.
type Settings struct {
	Timer  TimerSettings `json:"timerSettings"`
	Stages []Stage       `json:"intervals"`
	TTS    TTSSettings   `json:"ttsSettings"`
	Audio  AudioSettings `json:"audioSettings"`
}
