package logger

import (
	"log/slog"
	"os"
)

// New returns a stdout slog logger at the given level. JSON output is for
// aggregated environments; text for local runs.
func New(level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
