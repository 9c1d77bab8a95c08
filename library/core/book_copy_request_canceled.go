package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyRequestCanceledEventType is the event type identifier.
const BookCopyRequestCanceledEventType = "BookCopyRequestCanceled"

// BookCopyRequestCanceled represents when an open request of a reader for a book copy is withdrawn.
type BookCopyRequestCanceled struct {
	BookID     BookIDString
	ReaderID   ReaderIDString
	OccurredAt OccurredAtTS
}

// BuildBookCopyRequestCanceled creates a new BookCopyRequestCanceled event.
func BuildBookCopyRequestCanceled(bookID uuid.UUID, readerID uuid.UUID, occurredAt time.Time) BookCopyRequestCanceled {
	return BookCopyRequestCanceled{
		BookID:     bookID.String(),
		ReaderID:   readerID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyRequestCanceled) EventType() string {
	return BookCopyRequestCanceledEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyRequestCanceled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyRequestCanceled) IsErrorEvent() bool {
	return false
}
