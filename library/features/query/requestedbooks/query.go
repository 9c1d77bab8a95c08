package requestedbooks

import (
	"github.com/google/uuid"
)

const queryType = "RequestedBooks"

// Query asks for the open requests of a reader.
type Query struct {
	ReaderID uuid.UUID
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(readerID uuid.UUID) Query {
	return Query{ReaderID: readerID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
