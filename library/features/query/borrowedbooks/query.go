package borrowedbooks

import (
	"time"

	"github.com/google/uuid"
)

const queryType = "BorrowedBooks"

// Query asks for the loans of a reader, with fees as of Now.
type Query struct {
	ReaderID uuid.UUID
	Now      time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(readerID uuid.UUID, now time.Time) Query {
	return Query{
		ReaderID: readerID,
		Now:      now,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
