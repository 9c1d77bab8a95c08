package postgresengine

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

const (
	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	cteContext        = "context"
	cteVals           = "vals"
	dialectPostgres   = "postgres"
	aliasMaxSeq       = "max_seq"
	castText          = "?::text"
	castTimestamp     = "?::timestamp with time zone"
	castJsonb         = "?::jsonb"
	payloadContains   = colPayload + " @> ?::jsonb"
)

type sqlQueryString = string

func (es *EventStore) buildSelectQuery(filter eventstore.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	selectStmt, whereErr := addWhereClause(filter, selectStmt)
	if whereErr != nil {
		return "", whereErr
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) buildAppendQuery(
	allEvents eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	if len(allEvents) == 1 {
		return es.buildInsertQueryForSingleEvent(allEvents[0], filter, expectedMaxSequenceNumber)
	}

	return es.buildInsertQueryForMultipleEvents(allEvents, filter, expectedMaxSequenceNumber)
}

func (es *EventStore) buildMaxSequenceCTE(builder *goqu.DialectWrapper, filter eventstore.Filter) (*goqu.SelectDataset, error) {
	cteStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	return addWhereClause(filter, cteStmt)
}

func (es *EventStore) buildInsertQueryForSingleEvent(
	event eventstore.StorableEvent,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt, cteErr := es.buildMaxSequenceCTE(&builder, filter)
	if cteErr != nil {
		return "", cteErr
	}

	selectStmt := builder.
		From(cteContext).
		Select(
			goqu.L(castText, event.EventType),
			goqu.L(castTimestamp, event.OccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)),
			goqu.L(castJsonb, string(event.MetadataJSON)),
		).
		Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber)))

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (es *EventStore) buildInsertQueryForMultipleEvents(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt, cteErr := es.buildMaxSequenceCTE(&builder, filter)
	if cteErr != nil {
		return "", cteErr
	}

	var valuesStmt *goqu.SelectDataset
	for _, event := range events {
		eventStmt := builder.Select(
			goqu.L(castText, event.EventType).As(colEventType),
			goqu.L(castTimestamp, event.OccurredAt).As(colOccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
			goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
		)

		if valuesStmt == nil {
			valuesStmt = eventStmt
			continue
		}

		valuesStmt = valuesStmt.UnionAll(eventStmt)
	}

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(
					goqu.T(cteVals).Col(colEventType),
					goqu.T(cteVals).Col(colOccurredAt),
					goqu.T(cteVals).Col(colPayload),
					goqu.T(cteVals).Col(colMetadata),
				).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// addWhereClause translates the Filter into OR-combined items.
// Predicates become jsonb containment checks, the JSON document is built with jsoniter so keys and values are escaped.
func addWhereClause(filter eventstore.Filter, selectStmt *goqu.SelectDataset) (*goqu.SelectDataset, error) {
	if len(filter.Items()) == 0 {
		return selectStmt, nil
	}

	itemsExpressions := make([]goqu.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		eventTypeExpressions := make([]goqu.Expression, 0, len(item.EventTypes()))
		for _, eventType := range item.EventTypes() {
			eventTypeExpressions = append(eventTypeExpressions, goqu.Ex{colEventType: eventType})
		}

		predicateExpressions := make([]goqu.Expression, 0, len(item.Predicates()))
		for _, predicate := range item.Predicates() {
			containment, marshalErr := jsoniter.ConfigFastest.MarshalToString(map[string]string{predicate.Key(): predicate.Val()})
			if marshalErr != nil {
				return nil, errors.Join(eventstore.ErrBuildingQueryFailed, fmt.Errorf("predicate %q: %w", predicate.Key(), marshalErr))
			}

			predicateExpressions = append(predicateExpressions, goqu.L(payloadContains, containment))
		}

		var predicatesExpressionList exp.ExpressionList
		if item.AllPredicatesMustMatch() {
			predicatesExpressionList = goqu.And(predicateExpressions...)
		} else {
			predicatesExpressionList = goqu.Or(predicateExpressions...)
		}

		itemsExpressions = append(itemsExpressions, goqu.And(goqu.Or(eventTypeExpressions...), predicatesExpressionList))
	}

	return selectStmt.Where(goqu.Or(itemsExpressions...)), nil
}
