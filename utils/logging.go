package utils

import (
	"log/slog"
	"os"
)

// NewLogger returns the application logger. "json" is what we run in
// production (one JSON object per line, machine parseable); anything else
// falls back to the human-readable text handler for local development.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
}
