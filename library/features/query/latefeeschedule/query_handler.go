package latefeeschedule

import (
	"context"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for LateFeeSchedule.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle executes the query. A missing schedule is not an error.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (LateFeeSchedule, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return LateFeeSchedule{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return LateFeeSchedule{}, err
	}

	return ProjectLateFeeSchedule(history, maxSequenceNumber), nil
}
