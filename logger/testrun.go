package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards every record, for tests that need a logger in context.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
