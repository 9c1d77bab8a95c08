package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// CommandWrapper logs, measures and traces every execution of the wrapped command handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {

	if coreHandler == nil {
		return nil, ErrNilHandler
	}

	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger, it is preferred over the basic one.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
// The handler runs inside the span, so event store spans become its children.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// Handle delegates to the core handler and logs the outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := shell.StartSpan(ctx, w.tracingCollector, shell.SpanNameCommandHandle, map[string]string{
		shell.LogAttrCommandType: w.commandType,
	})
	shell.LogDebug(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)
	shell.RecordRetryMetrics(ctx, w.metricsCollector, w.commandType, result)

	if err != nil {
		status := shell.StatusOf(err)
		shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
		shell.FinishSpan(w.tracingCollector, span, status, duration, err)

		shell.LogError(
			ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, w.commandType,
			shell.LogAttrStatus, shell.StatusOf(err),
			shell.LogAttrRetryAttempts, result.RetryAttempts,
			shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
			shell.LogAttrError, err.Error(),
		)

		return result, err
	}

	businessOutcome := shell.StatusSuccess
	if result.Idempotent {
		businessOutcome = shell.StatusIdempotent
	}

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, businessOutcome, duration)
	shell.FinishSpan(w.tracingCollector, span, businessOutcome, duration, nil)

	shell.LogInfo(
		ctx, w.logger, w.contextualLogger, shell.LogMsgCommandCompleted,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrStatus, shell.StatusSuccess,
		shell.LogAttrBusinessOutcome, businessOutcome,
		shell.LogAttrRetryAttempts, result.RetryAttempts,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}
