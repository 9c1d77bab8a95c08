package booksincirculation

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for BooksInCirculation.
type QueryHandler struct {
	eventStore          shell.QueriesEvents
	eventualConsistency bool
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithEventualConsistency lets the event store answer from a read replica.
func WithEventualConsistency() Option {
	return func(h *QueryHandler) {
		h.eventualConsistency = true
	}
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents, opts ...Option) QueryHandler {
	handler := QueryHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BooksInCirculation, error) {
	if h.eventualConsistency {
		ctx = eventstore.WithEventualConsistency(ctx)
	} else {
		ctx = eventstore.WithStrongConsistency(ctx)
	}

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return BooksInCirculation{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return BooksInCirculation{}, err
	}

	return ProjectBooksInCirculation(history, query, maxSequenceNumber), nil
}
