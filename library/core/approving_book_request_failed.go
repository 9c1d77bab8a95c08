package core

import (
	"time"

	"github.com/google/uuid"
)

// ApprovingBookRequestFailedEventType is the event type identifier.
const ApprovingBookRequestFailedEventType = "ApprovingBookRequestFailed"

// ApprovingBookRequestFailed represents when approving a book request fails due to business rule violations.
type ApprovingBookRequestFailed struct {
	BookID      BookIDString
	ReaderID    ReaderIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildApprovingBookRequestFailed creates a new ApprovingBookRequestFailed event.
func BuildApprovingBookRequestFailed(bookID uuid.UUID, readerID uuid.UUID, failureInfo string, occurredAt time.Time) ApprovingBookRequestFailed {
	return ApprovingBookRequestFailed{
		BookID:      bookID.String(),
		ReaderID:    readerID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ApprovingBookRequestFailed) EventType() string {
	return ApprovingBookRequestFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ApprovingBookRequestFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event records a rejected command.
func (e ApprovingBookRequestFailed) IsErrorEvent() bool {
	return true
}
