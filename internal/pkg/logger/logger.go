package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps LOG_LEVEL values to slog levels. Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Setup returns a JSON logger writing to w.
func Setup(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// SetupDefault installs the JSON logger as the slog default, tagged with the
// application attributes. A nil writer means os.Stdout.
func SetupDefault(w io.Writer, level, app, version, env string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	l := Setup(w, level).With(
		slog.String("app", app),
		slog.String("version", version),
		slog.String("env", env),
	)
	slog.SetDefault(l)
	return l
}
