package stdjson

import (
	"io"
	"log/slog"
	"os"
)

// NewDefault creates a JSON logger writing to stdout.
func NewDefault(level slog.Level) *slog.Logger {
	return New(os.Stdout, level)
}

// New creates a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
