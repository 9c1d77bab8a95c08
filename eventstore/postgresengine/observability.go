package postgresengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

const (
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgIterateRowsFailed        = "failed to iterate database rows"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgSchemaCreationFailed     = "failed to create events schema"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSchemaCreated            = "events schema ensured"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrExpectedEvents          = "expected_events"
	logAttrRowsAffected            = "rows_affected"
	logAttrExpectedSequence        = "expected_sequence"
	logAttrTable                   = "table"
	logAttrConsistency             = "consistency"
	logActionQuery                 = "query"
	logActionAppend                = "append"
	logActionSchema                = "schema"
)

// logQueryWithDuration logs SQL queries with execution time at debug level.
func (es *EventStore) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	case es.logger != nil:
		es.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level.
func (es *EventStore) logOperation(ctx context.Context, action string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	case es.logger != nil:
		es.logger.Info(logMsgOperation+action, args...)
	}
}

func (es *EventStore) logWarning(ctx context.Context, message string, err error) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
	case es.logger != nil:
		es.logger.Warn(message, logAttrError, err.Error())
	}
}

// logError logs error information at the error level.
func (es *EventStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.ErrorContext(ctx, message, allArgs...)
	case es.logger != nil:
		es.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

const (
	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricDatabaseErrors       = "eventstore_database_errors_total"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	spanAttrOperation    = "operation"
	spanAttrEventCount   = "event_count"
	spanAttrEventType    = "event_type"
	spanAttrMaxSequence  = "max_sequence"
	spanAttrExpectedSeq  = "expected_sequence"
	spanAttrRowsAffected = "rows_affected"
	spanAttrErrorType    = "error_type"
	spanAttrDurationMS   = "duration_ms"
	spanAttrConsistency  = "consistency"

	labelStatus       = "status"
	labelConflictType = "conflict_type"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "conflict"

	errorTypeBuildQuery     = "build_query"
	errorTypeDatabaseQuery  = "database_query"
	errorTypeRowScan        = "row_scan"
	errorTypeDatabaseExec   = "database_exec"
	errorTypeRowsAffected   = "rows_affected"
	errorTypeConcurrency    = "concurrency_conflict"
	conflictTypeConcurrency = "concurrency"
)

/*** Tracing ***/

type operationSpan struct {
	es   *EventStore
	span SpanContext
}

func (es *EventStore) startQuerySpan(ctx context.Context) (context.Context, *operationSpan) {
	return es.startSpan(ctx, spanNameQuery, map[string]string{
		spanAttrOperation:   operationQuery,
		spanAttrConsistency: eventstore.GetConsistencyLevel(ctx).String(),
	})
}

func (es *EventStore) startAppendSpan(
	ctx context.Context,
	allEvents eventstore.StorableEvents,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (context.Context, *operationSpan) {

	attrs := map[string]string{
		spanAttrOperation:   operationAppend,
		spanAttrEventCount:  strconv.Itoa(len(allEvents)),
		spanAttrExpectedSeq: strconv.FormatUint(uint64(expectedMaxSequenceNumber), 10),
	}

	if len(allEvents) > 0 {
		attrs[spanAttrEventType] = allEvents[0].EventType
	}

	return es.startSpan(ctx, spanNameAppend, attrs)
}

func (es *EventStore) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, *operationSpan) {
	if es.tracingCollector == nil {
		return ctx, &operationSpan{es: es}
	}

	spanCtx, span := es.tracingCollector.StartSpan(ctx, name, attrs)

	return spanCtx, &operationSpan{es: es, span: span}
}

func (s *operationSpan) finish(status string, duration time.Duration, attrs map[string]string) {
	if s.es.tracingCollector == nil || s.span == nil {
		return
	}

	if attrs == nil {
		attrs = make(map[string]string)
	}

	if duration > 0 {
		attrs[spanAttrDurationMS] = strconv.FormatFloat(toMilliseconds(duration), 'f', 3, 64)
	}

	s.es.tracingCollector.FinishSpan(s.span, status, attrs)
}

func (s *operationSpan) finishError(errorType string, duration time.Duration) {
	s.finish(statusError, duration, map[string]string{spanAttrErrorType: errorType})
}

/*** Metrics ***/

func operationLabels(operation string, status string) map[string]string {
	return map[string]string{spanAttrOperation: operation, labelStatus: status}
}

func (es *EventStore) recordQuerySuccess(ctx context.Context, eventCount int, duration time.Duration) {
	eventstore.RecordDuration(ctx, es.metricsCollector, metricQueryDuration, duration, operationLabels(operationQuery, statusSuccess))
	eventstore.RecordValue(ctx, es.metricsCollector, metricEventsQueried, float64(eventCount), operationLabels(operationQuery, statusSuccess))
}

func (es *EventStore) recordAppendSuccess(ctx context.Context, eventCount int, duration time.Duration) {
	eventstore.RecordDuration(ctx, es.metricsCollector, metricAppendDuration, duration, operationLabels(operationAppend, statusSuccess))
	eventstore.RecordValue(ctx, es.metricsCollector, metricEventsAppended, float64(eventCount), operationLabels(operationAppend, statusSuccess))
}

func (es *EventStore) recordError(ctx context.Context, operation string, errorType string, duration time.Duration) {
	durationMetric := metricQueryDuration
	if operation == operationAppend {
		durationMetric = metricAppendDuration
	}

	if duration > 0 {
		eventstore.RecordDuration(ctx, es.metricsCollector, durationMetric, duration, operationLabels(operation, statusError))
	}

	labels := operationLabels(operation, statusError)
	labels[spanAttrErrorType] = errorType
	eventstore.IncrementCounter(ctx, es.metricsCollector, metricDatabaseErrors, labels)
}

func (es *EventStore) recordConcurrencyConflict(ctx context.Context, duration time.Duration) {
	eventstore.RecordDuration(ctx, es.metricsCollector, metricAppendDuration, duration, operationLabels(operationAppend, statusConflict))
	eventstore.IncrementCounter(ctx, es.metricsCollector, metricConcurrencyConflicts, map[string]string{
		spanAttrOperation: operationAppend,
		labelConflictType: conflictTypeConcurrency,
	})
}
