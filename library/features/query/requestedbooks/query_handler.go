package requestedbooks

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for RequestedBooks.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle reads the requests of the reader, then the catalog entries of the requested book copies.
func (h QueryHandler) Handle(ctx context.Context, query Query) (RequestedBooks, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, BuildEventFilter(query.ReaderID))
	if err != nil {
		return RequestedBooks{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return RequestedBooks{}, err
	}

	if catalogFilter, ok := BuildCatalogFilter(requestedBookIDs(history)); ok {
		catalogEvents, _, queryErr := h.eventStore.Query(ctx, catalogFilter)
		if queryErr != nil {
			return RequestedBooks{}, queryErr
		}

		catalog, mapErr := shell.DomainEventsFrom(catalogEvents)
		if mapErr != nil {
			return RequestedBooks{}, mapErr
		}

		history = append(catalog, history...)
	}

	return ProjectRequestedBooks(history, query, maxSequenceNumber), nil
}
