package shell

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// DecideFunc is the pure business logic of a command: it decides on the history of a dynamic event stream.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// QueryDecideAppend runs one Query -> Unmarshal -> Decide -> Append cycle on the stream selected by filter.
//
// It returns idempotent=true if there was nothing to append. An error decision is appended first,
// then its error is returned. eventstore.ErrConcurrencyConflict means the stream changed after the query.
func QueryDecideAppend(
	ctx context.Context,
	eventStore EventStore,
	filter eventstore.Filter,
	decide DecideFunc,
) (bool, error) {

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := eventStore.Query(ctx, filter)
	if err != nil {
		return false, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return false, err
	}

	result := decide(history)

	if !result.HasEventToAppend() {
		return true, nil
	}

	storableEvent, err := StorableEventFrom(result.Event, BuildInitialEventMetadata())
	if err != nil {
		return false, err
	}

	if appendErr := eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); appendErr != nil {
		return false, appendErr
	}

	return false, result.HasError()
}

// HandleWithRetry retries execute on concurrency conflicts and turns the outcome into a HandlerResult.
func HandleWithRetry(
	ctx context.Context,
	execute func(ctx context.Context) (bool, error),
	retryOptions ...RetryOption,
) (HandlerResult, error) {

	var isIdempotent bool

	retryMetrics, err := RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := execute(retryCtx)
		isIdempotent = idempotent

		return execErr
	}, retryOptions...)

	if err != nil {
		return NewErrorResult(retryMetrics), err
	}

	if isIdempotent {
		return NewIdempotentResult(retryMetrics), nil
	}

	return NewSuccessResult(retryMetrics), nil
}
