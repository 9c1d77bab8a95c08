package observable

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// ErrNilHandler is returned when a wrapper is created without a handler to wrap.
var ErrNilHandler = errors.New("handler to wrap must not be nil")

// QueryWrapper logs, measures and traces every execution of the wrapped query handler.
type QueryWrapper[Q shell.Query, R any] struct {
	coreHandler      shell.QueryHandler[Q, R]
	queryType        string
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R any] func(*QueryWrapper[Q, R]) error

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R any](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {

	if coreHandler == nil {
		return nil, ErrNilHandler
	}

	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R any](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger, it is preferred over the basic one.
func WithQueryContextualLogging[Q shell.Query, R any](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R any](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R any](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// Handle delegates to the core handler and logs the outcome.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	ctx, span := shell.StartSpan(ctx, w.tracingCollector, shell.SpanNameQueryHandle, map[string]string{
		shell.LogAttrQueryType: w.queryType,
	})
	shell.LogDebug(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(start)

	if err != nil {
		status := shell.StatusOf(err)
		shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, duration)
		shell.FinishSpan(w.tracingCollector, span, status, duration, err)

		shell.LogError(
			ctx, w.logger, w.contextualLogger, shell.LogMsgQueryFailed,
			shell.LogAttrQueryType, w.queryType,
			shell.LogAttrStatus, shell.StatusOf(err),
			shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
			shell.LogAttrError, err.Error(),
		)

		return result, err
	}

	shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, shell.StatusSuccess, duration)
	shell.FinishSpan(w.tracingCollector, span, shell.StatusSuccess, duration, nil)

	shell.LogInfo(
		ctx, w.logger, w.contextualLogger, shell.LogMsgQueryCompleted,
		shell.LogAttrQueryType, w.queryType,
		shell.LogAttrStatus, shell.StatusSuccess,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}
