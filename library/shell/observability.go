package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

const (
	StatusSuccess             = "success"
	StatusError               = "error"
	StatusIdempotent          = "idempotent"
	StatusCanceled            = "canceled"
	StatusTimeout             = "timeout"
	StatusConcurrencyConflict = "concurrency_conflict"

	ErrorTypeNone                = "none"
	ErrorTypeConcurrencyConflict = "concurrency_conflict"
	ErrorTypeCanceled            = "context_canceled"
	ErrorTypeDeadlineExceeded    = "context_deadline_exceeded"
	ErrorTypeOther               = "other"

	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgCommandRetry     = "command handler retrying after concurrency conflict"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrDurationMS      = "duration_ms"
	LogAttrBusinessOutcome = "business_outcome"
	LogAttrRetryAttempts   = "retry_attempts"
	LogAttrAttempt         = "attempt"
	LogAttrError           = "error"

	CommandHandlerDurationMetric          = "commandhandler_handle_duration_seconds"
	CommandHandlerCallsMetric             = "commandhandler_handle_calls_total"
	CommandHandlerIdempotentMetric        = "commandhandler_idempotent_operations_total"
	CommandHandlerRetriesMetric           = "commandhandler_retry_attempts_total"
	CommandHandlerRetryDelayMetric        = "commandhandler_retry_delay_seconds"
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"
	QueryHandlerDurationMetric            = "queryhandler_handle_duration_seconds"
	QueryHandlerCallsMetric               = "queryhandler_handle_calls_total"

	SpanNameCommandHandle = "commandhandler.handle"
	SpanNameQueryHandle   = "queryhandler.handle"

	MetricLabelRetryCount = "retry_count"
	MetricLabelErrorType  = "error_type"
)

// ErrorTypeOf classifies an error for log attributes and HandlerResult.LastErrorType.
func ErrorTypeOf(err error) string {
	switch {
	case err == nil:
		return ErrorTypeNone
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return ErrorTypeConcurrencyConflict
	case errors.Is(err, context.Canceled):
		return ErrorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeDeadlineExceeded
	default:
		return ErrorTypeOther
	}
}

// StatusOf maps a handler error to the status logged for it.
func StatusOf(err error) string {
	switch ErrorTypeOf(err) {
	case ErrorTypeNone:
		return StatusSuccess
	case ErrorTypeConcurrencyConflict:
		return StatusConcurrencyConflict
	case ErrorTypeCanceled:
		return StatusCanceled
	case ErrorTypeDeadlineExceeded:
		return StatusTimeout
	default:
		return StatusError
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// LogInfo prefers the contextual logger. Both loggers may be nil.
func LogInfo(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	switch {
	case contextualLogger != nil:
		contextualLogger.InfoContext(ctx, msg, args...)
	case logger != nil:
		logger.Info(msg, args...)
	}
}

// LogDebug prefers the contextual logger. Both loggers may be nil.
func LogDebug(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	switch {
	case contextualLogger != nil:
		contextualLogger.DebugContext(ctx, msg, args...)
	case logger != nil:
		logger.Debug(msg, args...)
	}
}

// LogError prefers the contextual logger. Both loggers may be nil.
func LogError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	switch {
	case contextualLogger != nil:
		contextualLogger.ErrorContext(ctx, msg, args...)
	case logger != nil:
		logger.Error(msg, args...)
	}
}

// RecordCommandMetrics records duration and call count of one command handler call,
// idempotent calls are counted separately as well. A nil collector is a no-op.
func RecordCommandMetrics(ctx context.Context, collector MetricsCollector, commandType string, status string, duration time.Duration) {
	labels := map[string]string{LogAttrCommandType: commandType, LogAttrStatus: status}

	eventstore.RecordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	eventstore.IncrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	if status == StatusIdempotent {
		eventstore.IncrementCounter(ctx, collector, CommandHandlerIdempotentMetric, labels)
	}
}

// RecordRetryMetrics records the retries and backoff waits a HandlerResult reports.
func RecordRetryMetrics(ctx context.Context, collector MetricsCollector, commandType string, result HandlerResult) {
	if result.RetryAttempts > 1 {
		eventstore.IncrementCounter(ctx, collector, CommandHandlerRetriesMetric, map[string]string{
			LogAttrCommandType:    commandType,
			MetricLabelRetryCount: strconv.Itoa(result.RetryAttempts - 1),
			MetricLabelErrorType:  result.LastErrorType,
		})
		eventstore.RecordDuration(ctx, collector, CommandHandlerRetryDelayMetric, result.TotalRetryDelay, map[string]string{
			LogAttrCommandType: commandType,
		})
	}

	if result.RetriesExhausted {
		eventstore.IncrementCounter(ctx, collector, CommandHandlerMaxRetriesReachedMetric, map[string]string{
			LogAttrCommandType: commandType,
		})
	}
}

// RecordQueryMetrics records duration and call count of one query handler call.
func RecordQueryMetrics(ctx context.Context, collector MetricsCollector, queryType string, status string, duration time.Duration) {
	labels := map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}

	eventstore.RecordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	eventstore.IncrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)
}

// StartSpan starts a span, or returns ctx and nil if tracing is disabled.
func StartSpan(ctx context.Context, collector TracingCollector, name string, attrs map[string]string) (context.Context, SpanContext) {
	if collector == nil {
		return ctx, nil
	}

	return collector.StartSpan(ctx, name, attrs)
}

// FinishSpan finishes a span started by StartSpan, err may be nil.
func FinishSpan(collector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	if collector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: strconv.FormatFloat(ToMilliseconds(duration), 'f', 2, 64),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	collector.FinishSpan(span, status, attrs)
}
