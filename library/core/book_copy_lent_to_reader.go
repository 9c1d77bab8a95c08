package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyLentToReaderEventType is the event type identifier.
const BookCopyLentToReaderEventType = "BookCopyLentToReader"

// BookCopyLentToReader represents when a book copy is lent to a reader until DueAt.
type BookCopyLentToReader struct {
	BookID     BookIDString
	ReaderID   ReaderIDString
	DueAt      time.Time
	OccurredAt OccurredAtTS
}

// BuildBookCopyLentToReader creates a new BookCopyLentToReader event.
func BuildBookCopyLentToReader(
	bookID uuid.UUID,
	readerID uuid.UUID,
	dueAt time.Time,
	occurredAt time.Time,
) BookCopyLentToReader {

	return BookCopyLentToReader{
		BookID:     bookID.String(),
		ReaderID:   readerID.String(),
		DueAt:      ToOccurredAt(dueAt),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyLentToReader) EventType() string {
	return BookCopyLentToReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyLentToReader) IsErrorEvent() bool {
	return false
}
