package cancelbookrequest

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// CommandHandler runs Query -> Unmarshal -> Decide -> Append for CancelBookRequest.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command, retrying on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.HandleWithRetry(ctx, func(ctx context.Context) (bool, error) {
		return shell.QueryDecideAppend(
			ctx,
			h.eventStore,
			BuildEventFilter(command.BookID, command.ReaderID),
			func(history core.DomainEvents) core.DecisionResult { return Decide(history, command) },
		)
	}, h.retryOptions...)
}

// BuildEventFilter selects the requests of the reader for the book copy and the loans that fulfilled them.
func BuildEventFilter(bookID uuid.UUID, readerID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCopyRequestedByReaderEventType,
			core.BookCopyRequestApprovedEventType,
			core.BookCopyRequestCanceledEventType,
			core.BookCopyLentToReaderEventType,
		).
		AndAllPredicatesOf(
			eventstore.P("BookID", bookID.String()),
			eventstore.P("ReaderID", readerID.String()),
		).
		Finalize()
}
