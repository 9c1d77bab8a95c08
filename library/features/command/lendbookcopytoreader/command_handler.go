package lendbookcopytoreader

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// DefaultLoanPeriod is added to the lending time to get the due date.
const DefaultLoanPeriod = 14 * 24 * time.Hour

// CommandHandler runs Query -> Unmarshal -> Decide -> Append for LendBookCopyToReader.
type CommandHandler struct {
	eventStore   shell.EventStore
	loanPeriod   time.Duration
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

// WithLoanPeriod overrides DefaultLoanPeriod. Non-positive periods are ignored.
func WithLoanPeriod(period time.Duration) Option {
	return func(h *CommandHandler) {
		if period > 0 {
			h.loanPeriod = period
		}
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		loanPeriod: DefaultLoanPeriod,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command, retrying on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	dueAt := command.OccurredAt.Add(h.loanPeriod)

	return shell.HandleWithRetry(ctx, func(ctx context.Context) (bool, error) {
		return shell.QueryDecideAppend(
			ctx,
			h.eventStore,
			BuildEventFilter(command.BookID, command.ReaderID),
			func(history core.DomainEvents) core.DecisionResult { return Decide(history, command, dueAt) },
		)
	}, h.retryOptions...)
}

// BuildEventFilter selects the history of the book copy, its reservations and the loans of the reader.
func BuildEventFilter(bookID uuid.UUID, readerID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCopyAddedToCirculationEventType,
			core.BookCopyRemovedFromCirculationEventType,
			core.BookCopyRequestApprovedEventType,
			core.BookCopyRequestCanceledEventType,
			core.BookCopyLentToReaderEventType,
			core.BookCopyReturnedByReaderEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.ReaderRegisteredEventType,
			core.BookCopyLentToReaderEventType,
			core.BookCopyReturnedByReaderEventType,
		).
		AndAnyPredicateOf(eventstore.P("ReaderID", readerID.String())).
		Finalize()
}
