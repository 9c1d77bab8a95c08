package shell

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger is the context-aware variant of Logger, also satisfied by *slog.Logger.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector receives handler metrics, it is the event store's collector interface.
type MetricsCollector = eventstore.MetricsCollector

// TracingCollector starts and finishes handler spans.
type TracingCollector = eventstore.TracingCollector

// SpanContext is an active tracing span.
type SpanContext = eventstore.SpanContext

// QueriesEvents is the read side of an event store.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need: read a dynamic event stream and append to it
// under optimistic concurrency. Both engines implement it.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by every command type, CommandType is used for logging.
type Command interface {
	CommandType() string
}

// Query is implemented by every query type, QueryType is used for logging.
type Query interface {
	QueryType() string
}

// CommandHandler processes one command type.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueryHandler processes one query type and returns its projection.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
