// Package log builds the process-wide slog.Logger from CLI settings.
package log

import (
	"io"
	"log/slog"
	"os"
)

// LevelTrace is a custom level below Debug for per-report noise.
const LevelTrace slog.Level = -8

// ParseLevel maps a CLI level string onto a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Setup creates the logger and installs it as the slog default. Logs go to
// stderr, or to file when given; the returned closer is non-nil in the file
// case and must be closed on exit.
func Setup(level, file string) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = f
	}

	logger := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(logger)
	return logger, closer, nil
}
