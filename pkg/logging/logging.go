// Package logging configures slog with a tint handler.
//
// LOG_LEVEL selects the level: debug, info, warn, error (default info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint logger on stderr as the slog default and returns it.
func Setup(level string) *slog.Logger {
	return SetupWriter(os.Stderr, ParseLevel(level))
}

// SetupWriter installs a tint logger writing to w.
func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  level == slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name onto slog levels. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
