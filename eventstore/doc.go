// Package eventstore provides the storage-agnostic building blocks for event sourcing
// with dynamic event streams: filters, storable events, consistency hints and the errors
// shared by all engines.
//
// A "dynamic event stream" is not a fixed aggregate stream. It is whatever set of events
// a Filter selects, and optimistic concurrency is checked against exactly that set:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookCopyLentToReaderEventType,
//			core.BookCopyReturnedByReaderEventType).
//		AndAnyPredicateOf(eventstore.P("ReaderID", readerID.String())).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Append fails with ErrConcurrencyConflict when another writer appended an event matching
// the same filter after maxSeq was read.
package eventstore
