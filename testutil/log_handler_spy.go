package testutil

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
)

// LogHandlerSpy is a slog.Handler that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy. Set LOG_TEST_OUTPUT to also see the records on stdout.
func NewLogHandlerSpy(t testing.TB) *LogHandlerSpy {
	t.Helper()

	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: os.Getenv("LOG_TEST_OUTPUT") != "",
	}
}

// Logger returns a *slog.Logger writing into the spy.
func (s *LogHandlerSpy) Logger() *slog.Logger {
	return slog.New(s)
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler, all levels are captured.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// Count returns how many records carry the message.
func (s *LogHandlerSpy) Count(message string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.records {
		if record.Message == message {
			count++
		}
	}

	return count
}

// HasLog reports whether a record with the level and message was captured.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	_, found := s.find(level, message)
	return found
}

// AttrOf returns the value of an attribute of the first record with the level and message.
func (s *LogHandlerSpy) AttrOf(level slog.Level, message string, key string) (slog.Value, bool) {
	record, found := s.find(level, message)
	if !found {
		return slog.Value{}, false
	}

	var value slog.Value
	var hasAttr bool

	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = attr.Value
			hasAttr = true
			return false
		}

		return true
	})

	return value, hasAttr
}

func (s *LogHandlerSpy) find(level slog.Level, message string) (slog.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return record, true
		}
	}

	return slog.Record{}, false
}
