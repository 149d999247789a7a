package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs a JSON slog logger. Output goes to a file because stdout
// belongs to the terminal UI; set LOG_FILE to relocate it.
func New() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewJSONHandler(output(), &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "tripdeck")
}

func output() io.Writer {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		path = "tripdeck.log"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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
