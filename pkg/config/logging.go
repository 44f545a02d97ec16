package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type LogConfig struct {
	Format string `env:"LOG_FORMAT" env-default:"text"` // text, json or tint
	Level  string `env:"LOG_LEVEL" env-default:"info"`
}

func (l LogConfig) level() slog.Level {
	switch strings.ToLower(l.Level) {
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

// NewLogger builds the process logger for the configured format
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	switch strings.ToLower(l.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l.level()}))
	case "tint":
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      l.level(),
			TimeFormat: time.Kitchen,
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     l.level(),
		}))
	}
}
