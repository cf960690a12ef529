// Package log configures the process-wide structured logger. Log output
// goes to a rotating file so it never fights the countdown display for the
// terminal.
package log

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init routes slog's default logger to a rotating file at path. Verbose
// enables debug-level records.
func Init(path string, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
