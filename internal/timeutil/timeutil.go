// Package timeutil provides utility functions for working with wall-clock
// times and the daily routine window.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// ClockFormat is the zero-padded wall-clock layout used throughout the
// routine document ("HH:MM").
const ClockFormat = "15:04"

// Clock returns the "HH:MM" representation of t. The zero padding makes
// lexicographic comparison equivalent to chronological comparison.
func Clock(t time.Time) string {
	return t.Format(ClockFormat)
}

// ValidClock reports whether s is a well-formed zero-padded "HH:MM" string.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockFormat, s)
	return err == nil && len(s) == len(ClockFormat)
}

// WindowStart combines now's calendar date with the "HH:MM" start time.
// It returns the zero time if start is malformed.
func WindowStart(now time.Time, start string) time.Time {
	parts := strings.SplitN(start, ":", 2)
	if len(parts) != 2 {
		return time.Time{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}
	}

	return time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		hour,
		minute,
		0,
		0,
		now.Location(),
	)
}

// ElapsedMinutes returns the number of whole minutes between the window
// start and now, rounding toward negative infinity for instants before the
// start.
func ElapsedMinutes(now, windowStart time.Time) int {
	d := now.Sub(windowStart)
	if d < 0 {
		// integer division truncates toward zero; -30s must count as
		// minute -1, not minute 0
		return -int((-d + time.Minute - time.Nanosecond) / time.Minute)
	}

	return int(d / time.Minute)
}

// FormatRemaining renders a countdown as "HH:MM:SS", or "MM:SS" when less
// than an hour remains. Negative durations render as zero.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(d / time.Second)
	secs := total % secondsInAMinute
	mins := (total / secondsInAMinute) % minutesInAnHour
	hours := total / (secondsInAMinute * minutesInAnHour)

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
	}

	return fmt.Sprintf("%02d:%02d", mins, secs)
}
