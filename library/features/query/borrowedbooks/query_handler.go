package borrowedbooks

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for BorrowedBooks.
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

// Handle reads the loans of the reader, then the catalog entries of the lent book copies.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowedBooks, error) {
	if h.eventualConsistency {
		ctx = eventstore.WithEventualConsistency(ctx)
	} else {
		ctx = eventstore.WithStrongConsistency(ctx)
	}

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, BuildEventFilter(query.ReaderID))
	if err != nil {
		return BorrowedBooks{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return BorrowedBooks{}, err
	}

	if catalogFilter, ok := BuildCatalogFilter(lentBookIDs(history)); ok {
		catalogEvents, _, queryErr := h.eventStore.Query(ctx, catalogFilter)
		if queryErr != nil {
			return BorrowedBooks{}, queryErr
		}

		catalog, mapErr := shell.DomainEventsFrom(catalogEvents)
		if mapErr != nil {
			return BorrowedBooks{}, mapErr
		}

		history = append(catalog, history...)
	}

	return ProjectBorrowedBooks(history, query, maxSequenceNumber)
}
