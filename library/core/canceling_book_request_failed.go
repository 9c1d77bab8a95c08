package core

import (
	"time"

	"github.com/google/uuid"
)

// CancelingBookRequestFailedEventType is the event type identifier.
const CancelingBookRequestFailedEventType = "CancelingBookRequestFailed"

// CancelingBookRequestFailed represents when canceling a book request fails due to business rule violations.
type CancelingBookRequestFailed struct {
	BookID      BookIDString
	ReaderID    ReaderIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCancelingBookRequestFailed creates a new CancelingBookRequestFailed event.
func BuildCancelingBookRequestFailed(bookID uuid.UUID, readerID uuid.UUID, failureInfo string, occurredAt time.Time) CancelingBookRequestFailed {
	return CancelingBookRequestFailed{
		BookID:      bookID.String(),
		ReaderID:    readerID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e CancelingBookRequestFailed) EventType() string {
	return CancelingBookRequestFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CancelingBookRequestFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event records a rejected command.
func (e CancelingBookRequestFailed) IsErrorEvent() bool {
	return true
}
