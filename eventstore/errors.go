package eventstore

import (
	"errors"
)

var (
	// ErrEmptyEventsTableName is returned when an engine is configured with an empty table name.
	ErrEmptyEventsTableName = errors.New("events table name must not be empty")

	// ErrNilDatabaseConnection is returned when an engine is created without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned by Append when the dynamic event stream changed since it was queried.
	ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

	// ErrBuildingQueryFailed is returned when an engine can not build its query.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingEventsFailed is returned when querying events fails in the storage layer.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrScanningDBRowFailed is returned when a result row can not be scanned.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrBuildingStorableEventFailed is returned when a stored row does not form a valid StorableEvent.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")

	// ErrAppendingEventFailed is returned when appending events fails in the storage layer.
	ErrAppendingEventFailed = errors.New("appending the event failed")

	// ErrGettingRowsAffectedFailed is returned when the number of appended rows can not be determined.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is the highest sequence number of a "dynamic event stream" at the time it was queried.
type MaxSequenceNumberUint = uint
