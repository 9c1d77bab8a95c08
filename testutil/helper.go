package testutil

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/eventstore/memengine"
)

// GivenUniqueID returns a new time-ordered UUID.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenMemoryEventStore returns an empty in-memory event store.
func GivenMemoryEventStore(t testing.TB) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore()
	require.NoError(t, err, "error in creating the event store")

	return es
}

// ConflictingEventStore fails the first N appends with eventstore.ErrConcurrencyConflict,
// as if another writer had appended to the same dynamic event stream in between.
type ConflictingEventStore struct {
	*memengine.EventStore
	conflictsLeft atomic.Int32
	appendCalls   atomic.Int32
}

// NewConflictingEventStore wraps an empty in-memory event store.
func NewConflictingEventStore(t testing.TB, conflicts int32) *ConflictingEventStore {
	t.Helper()

	es := &ConflictingEventStore{EventStore: GivenMemoryEventStore(t)}
	es.conflictsLeft.Store(conflicts)

	return es
}

// Append delegates to the in-memory event store once all conflicts are used up.
func (es *ConflictingEventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	es.appendCalls.Add(1)

	if es.conflictsLeft.Add(-1) >= 0 {
		return eventstore.ErrConcurrencyConflict
	}

	return es.EventStore.Append(ctx, filter, expectedMaxSequenceNumber, event, additionalEvents...)
}

// AppendCalls returns how often Append was called.
func (es *ConflictingEventStore) AppendCalls() int {
	return int(es.appendCalls.Load())
}
