package config

import "github.com/skyspeak/rouse/internal/apperr"

var (
	errInvalidDocument = &apperr.Error{
		Message: "the routine document is not valid JSON",
	}

	// ErrInvalidClock reports a malformed "HH:MM" value from the
	// command line.
	ErrInvalidClock = &apperr.Error{
		Message: "times must be zero-padded 24-hour HH:MM values",
	}
)
