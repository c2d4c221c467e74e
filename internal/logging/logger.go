// Package logging wraps log/slog with the field helpers the HTTP layer and
// the CLI share.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

// Logger is a thin wrapper so callers can attach fields from a map.
type Logger struct {
	*slog.Logger
}

// NewLogger logs to stdout: human-readable text with debug level in
// development, JSON at info level otherwise.
func NewLogger(isDevelopment bool) *Logger {
	return New(os.Stdout, isDevelopment)
}

func New(w io.Writer, isDevelopment bool) *Logger {
	if isDevelopment {
		return &Logger{slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	}
	return &Logger{slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

// Nop discards everything. Used by tests and the CLI's quiet mode.
func Nop() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

// WithFields returns a child logger carrying fields in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return &Logger{l.Logger.With(args...)}
}
