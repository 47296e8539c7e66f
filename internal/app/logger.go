package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"shipment-photo-dashboard/internal/logx"
)

const serviceName = "service-dashboard"

// NewLogger returns the JSON logger used by the service. The level comes
// from LOG_LEVEL and defaults to info. The logger exists before the config
// is loaded, so it reads the environment directly.
func NewLogger() logx.Logger {
	return newJSONLogger(os.Stdout, os.Getenv("LOG_LEVEL"))
}

func newJSONLogger(w io.Writer, level string) logx.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return logx.NewSlogAdapter(slog.New(h)).With(logx.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
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
