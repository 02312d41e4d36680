// Package logging builds the service's slog logger and its HTTP access log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DebugEnv forces debug level output when set to any non-empty value.
const DebugEnv = "TASKS_DEBUG"

// DebugEnabled returns true if debug mode is enabled via the TASKS_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to slog levels.
// Unknown names fall back to INFO.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w in "text" or "json" format.
func New(levelStr, format string, w io.Writer) *slog.Logger {
	level := ParseLevel(levelStr)
	if DebugEnabled() {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
