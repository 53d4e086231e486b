// Package ctxlog builds the root slog.Logger for the demo command: format/
// level selection from CLI flags, as the teacher's internal/ctxlog and
// internal/app/logger.go do.
package ctxlog

import (
	"io"
	"log/slog"
	"os"
)

// New builds a root logger writing to w in either "text" or "json" format.
// Any other format string falls back to "text".
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewDefault builds a root logger writing text-formatted records to stderr
// at info level, suitable as a starting point before flags are parsed.
func NewDefault() *slog.Logger {
	return New(os.Stderr, "text", slog.LevelInfo)
}

// ParseLevel maps a CLI-facing level name to a slog.Level, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
