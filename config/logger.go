package config

import (
	"log/slog"
	"os"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds a slog.Logger from GO_ENV and LOG_LEVEL. Production gets
// a JSON handler, everything else a text handler. LOG_LEVEL defaults to info.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if l, ok := levels[os.Getenv("LOG_LEVEL")]; ok {
		level = l
	}

	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
