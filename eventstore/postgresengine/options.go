package postgresengine

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

// Logger interface for SQL query logging, operational information, warnings, and error reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger is the context-aware variant of Logger. If both are configured, the ContextualLogger wins.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector receives query and append durations, event counts, concurrency conflicts and database errors.
type MetricsCollector = eventstore.MetricsCollector

// TracingCollector receives one span per query and per append.
type TracingCollector = eventstore.TracingCollector

// SpanContext is an active tracing span.
type SpanContext = eventstore.SpanContext

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithTableName sets the table name for the EventStore.
func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		es.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the EventStore.
//
// Debug level: SQL queries with execution timing
// Info level: event counts, durations, concurrency conflicts
// Warn level: cleanup failures
// Error level: failures that abort an operation.
func WithLogger(logger Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets a logger that receives the operation's context with every message.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(es *EventStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
func WithMetrics(collector MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EventStore.
// The span context is propagated to the database call, and the span carries event counts,
// the max sequence number and on failure the error type.
func WithTracing(collector TracingCollector) Option {
	return func(es *EventStore) error {
		es.tracingCollector = collector
		return nil
	}
}
