package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyRequestApprovedEventType is the event type identifier.
const BookCopyRequestApprovedEventType = "BookCopyRequestApproved"

// BookCopyRequestApproved represents when the library approves the request of a reader for a book copy.
type BookCopyRequestApproved struct {
	BookID     BookIDString
	ReaderID   ReaderIDString
	OccurredAt OccurredAtTS
}

// BuildBookCopyRequestApproved creates a new BookCopyRequestApproved event.
func BuildBookCopyRequestApproved(bookID uuid.UUID, readerID uuid.UUID, occurredAt time.Time) BookCopyRequestApproved {
	return BookCopyRequestApproved{
		BookID:     bookID.String(),
		ReaderID:   readerID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyRequestApproved) EventType() string {
	return BookCopyRequestApprovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyRequestApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyRequestApproved) IsErrorEvent() bool {
	return false
}
