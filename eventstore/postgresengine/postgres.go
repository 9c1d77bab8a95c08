package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/eventstore/postgresengine/internal/adapters"
)

const defaultEventTableName = "events"

// EventStore is the Postgres implementation of a dynamic-event-stream event store.
type EventStore struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

type queryResultRow struct {
	eventType         string
	payload           []byte
	metadata          []byte
	occurredAt        time.Time
	maxSequenceNumber eventstore.MaxSequenceNumberUint
}

// NewEventStoreFromPGXPool creates a new EventStore using a pgx Pool with optional configuration.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromPGXPoolAndReplica creates a new EventStore which serves eventually consistent reads from the replica.
// Appends and strongly consistent reads always go to the primary.
func NewEventStoreFromPGXPoolAndReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*EventStore, error) {
	if primary == nil || replica == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapterWithReplica(primary, replica), options...)
}

// NewEventStoreFromSQLDB creates a new EventStore using a sql.DB with optional configuration.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates a new EventStore using a sqlx.DB with optional configuration.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (*EventStore, error) {
	if db == nil {
		return nil, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (*EventStore, error) {
	es := &EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query retrieves the events matching the eventstore.Filter, ordered by sequence number,
// as well as the MaxSequenceNumberUint of this "dynamic event stream" at the time of the query.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var empty eventstore.StorableEvents

	ctx, span := es.startQuerySpan(ctx)

	sqlQuery, buildQueryErr := es.buildSelectQuery(filter)
	if buildQueryErr != nil {
		es.logError(ctx, logMsgBuildSelectQueryFailed, buildQueryErr)
		es.recordError(ctx, operationQuery, errorTypeBuildQuery, 0)
		span.finishError(errorTypeBuildQuery, 0)

		return empty, 0, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery)
	if queryErr != nil {
		duration := time.Since(start)
		es.logQueryWithDuration(ctx, sqlQuery, logActionQuery, duration)
		es.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		es.recordError(ctx, operationQuery, errorTypeDatabaseQuery, duration)
		span.finishError(errorTypeDatabaseQuery, duration)

		return empty, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}
	defer es.closeRows(ctx, rows)

	eventStream, maxSequenceNumber, scanErr := es.processQueryResults(ctx, rows)
	duration := time.Since(start)
	es.logQueryWithDuration(ctx, sqlQuery, logActionQuery, duration)

	if scanErr != nil {
		errorType := errorTypeDatabaseQuery
		if errors.Is(scanErr, eventstore.ErrScanningDBRowFailed) || errors.Is(scanErr, eventstore.ErrBuildingStorableEventFailed) {
			errorType = errorTypeRowScan
		}

		es.recordError(ctx, operationQuery, errorType, duration)
		span.finishError(errorType, duration)

		return empty, 0, scanErr
	}

	es.logOperation(
		ctx,
		logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, toMilliseconds(duration),
		logAttrConsistency, eventstore.GetConsistencyLevel(ctx).String(),
	)
	es.recordQuerySuccess(ctx, len(eventStream), duration)
	span.finish(statusSuccess, duration, map[string]string{
		spanAttrEventCount:  strconv.Itoa(len(eventStream)),
		spanAttrMaxSequence: strconv.FormatUint(uint64(maxSequenceNumber), 10),
	})

	return eventStream, maxSequenceNumber, nil
}

func (es *EventStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		es.logWarning(ctx, logMsgCloseRowsFailed, closeErr)
	}
}

func (es *EventStore) processQueryResults(ctx context.Context, rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var empty eventstore.StorableEvents
	result := queryResultRow{}
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.maxSequenceNumber)
		if rowScanErr != nil {
			es.logError(ctx, logMsgScanRowFailed, rowScanErr)
			return empty, 0, errors.Join(eventstore.ErrScanningDBRowFailed, rowScanErr)
		}

		event, buildStorableErr := eventstore.BuildStorableEvent(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildStorableErr != nil {
			es.logError(ctx, logMsgBuildStorableEventFailed, buildStorableErr, logAttrEventType, result.eventType)
			return empty, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildStorableErr)
		}

		eventStream = append(eventStream, event)
		maxSequenceNumber = result.maxSequenceNumber
	}

	if iterErr := rows.Err(); iterErr != nil {
		es.logError(ctx, logMsgIterateRowsFailed, iterErr)
		return empty, 0, errors.Join(eventstore.ErrQueryingEventsFailed, iterErr)
	}

	return eventStream, maxSequenceNumber, nil
}

// Append appends one or multiple eventstore.StorableEvent(s) if the "dynamic event stream" selected by the
// eventstore.Filter still has the expected MaxSequenceNumberUint, otherwise it returns eventstore.ErrConcurrencyConflict.
//
// The filter should be the same one that was used for the Query before making the business decision.
// All events are appended atomically.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	allEvents := eventstore.StorableEvents{event}
	allEvents = append(allEvents, additionalEvents...)

	ctx, span := es.startAppendSpan(ctx, allEvents, expectedMaxSequenceNumber)

	sqlQuery, buildQueryErr := es.buildAppendQuery(allEvents, filter, expectedMaxSequenceNumber)
	if buildQueryErr != nil {
		es.logError(ctx, logMsgBuildInsertQueryFailed, buildQueryErr, logAttrEventCount, len(allEvents))
		es.recordError(ctx, operationAppend, errorTypeBuildQuery, 0)
		span.finishError(errorTypeBuildQuery, 0)

		return buildQueryErr
	}

	start := time.Now()
	result, execErr := es.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(ctx, sqlQuery, logActionAppend, duration)

	if execErr != nil {
		es.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		es.recordError(ctx, operationAppend, errorTypeDatabaseExec, duration)
		span.finishError(errorTypeDatabaseExec, duration)

		return errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		es.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		es.recordError(ctx, operationAppend, errorTypeRowsAffected, duration)
		span.finishError(errorTypeRowsAffected, duration)

		return errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	if rowsAffected < int64(len(allEvents)) {
		es.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrExpectedEvents, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)
		es.recordConcurrencyConflict(ctx, duration)
		span.finish(statusConflict, duration, map[string]string{
			spanAttrErrorType:    errorTypeConcurrency,
			spanAttrRowsAffected: strconv.FormatInt(rowsAffected, 10),
		})

		return eventstore.ErrConcurrencyConflict
	}

	es.logOperation(
		ctx,
		logMsgEventsAppended,
		logAttrEventCount, len(allEvents),
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordAppendSuccess(ctx, len(allEvents), duration)
	span.finish(statusSuccess, duration, map[string]string{
		spanAttrRowsAffected: strconv.FormatInt(rowsAffected, 10),
	})

	return nil
}
