package core

import (
	"time"
)

// BookIDString represents a book identifier
type BookIDString = string

// ReaderIDString represents a reader identifier
type ReaderIDString = string

// ISBNString represents an ISBN identifier
type ISBNString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision,
// which is what Postgres stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
