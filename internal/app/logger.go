package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gverdi/frasario-backend/internal/config"
)

// NewLogger builds a *slog.Logger from LogConfig and installs it as the
// process default via slog.SetDefault.
//
// Format "json" emits structured JSON for production; anything else falls
// back to a human-readable text handler with source locations for
// development. Output always goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     parseLevel(cfg.Level),
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a level name to slog.Level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
