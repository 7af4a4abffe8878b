package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the application logger. The API server logs JSON, the
// command line client logs text.
func NewLogger(w io.Writer, level string, json bool) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
