package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AntonStoeckl/library-latefees-go/eventstore/oteladapters"
)

const envLogLevel = "LOG_LEVEL"

// ErrUnknownLogLevel is returned for a level other than debug, info, warn or error.
var ErrUnknownLogLevel = errors.New("unknown log level")

// ParseLogLevel is case-insensitive, "" selects info.
func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Join(ErrUnknownLogLevel, errors.New(value))
	}
}

// LogLevelFromEnv reads LOG_LEVEL.
func LogLevelFromEnv() (slog.Level, error) {
	return ParseLogLevel(os.Getenv(envLogLevel))
}

// NewLogger builds a JSON logger writing to w.
// Records logged with a traced context carry trace_id and span_id.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(oteladapters.NewTraceCorrelationHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}
