package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyRequestedByReaderEventType is the event type identifier.
const BookCopyRequestedByReaderEventType = "BookCopyRequestedByReader"

// BookCopyRequestedByReader represents when a reader asks to borrow a book copy.
type BookCopyRequestedByReader struct {
	BookID     BookIDString
	ReaderID   ReaderIDString
	OccurredAt OccurredAtTS
}

// BuildBookCopyRequestedByReader creates a new BookCopyRequestedByReader event.
func BuildBookCopyRequestedByReader(bookID uuid.UUID, readerID uuid.UUID, occurredAt time.Time) BookCopyRequestedByReader {
	return BookCopyRequestedByReader{
		BookID:     bookID.String(),
		ReaderID:   readerID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyRequestedByReader) EventType() string {
	return BookCopyRequestedByReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyRequestedByReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyRequestedByReader) IsErrorEvent() bool {
	return false
}
