package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCreatingSchemaFailed is returned when EnsureSchema can not create the events table or its indexes.
var ErrCreatingSchemaFailed = errors.New("creating the events schema failed")

func (es *EventStore) schemaStatements() []string {
	table := quoteIdentifier(es.eventTableName)

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	sequence_number BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	event_type TEXT NOT NULL,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL DEFAULT '{}'
)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (event_type)`,
			quoteIdentifier(es.eventTableName+"_event_type_idx"), table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING gin (payload jsonb_path_ops)`,
			quoteIdentifier(es.eventTableName+"_payload_idx"), table),
	}
}

// EnsureSchema creates the events table and its indexes if they do not exist yet.
func (es *EventStore) EnsureSchema(ctx context.Context) error {
	for _, statement := range es.schemaStatements() {
		start := time.Now()
		_, execErr := es.db.Exec(ctx, statement)
		es.logQueryWithDuration(ctx, statement, logActionSchema, time.Since(start))

		if execErr != nil {
			es.logError(ctx, logMsgSchemaCreationFailed, execErr, logAttrTable, es.eventTableName)
			return errors.Join(ErrCreatingSchemaFailed, execErr)
		}
	}

	es.logOperation(ctx, logMsgSchemaCreated, logAttrTable, es.eventTableName)

	return nil
}

// quoteIdentifier renders a Postgres quoted identifier, doubling embedded quotes.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
