package core

import (
	"time"

	"github.com/google/uuid"
)

// RequestingBookCopyFailedEventType is the event type identifier.
const RequestingBookCopyFailedEventType = "RequestingBookCopyFailed"

// RequestingBookCopyFailed represents when requesting a book copy fails due to business rule violations.
type RequestingBookCopyFailed struct {
	BookID      BookIDString
	ReaderID    ReaderIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRequestingBookCopyFailed creates a new RequestingBookCopyFailed event.
func BuildRequestingBookCopyFailed(bookID uuid.UUID, readerID uuid.UUID, failureInfo string, occurredAt time.Time) RequestingBookCopyFailed {
	return RequestingBookCopyFailed{
		BookID:      bookID.String(),
		ReaderID:    readerID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e RequestingBookCopyFailed) EventType() string {
	return RequestingBookCopyFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RequestingBookCopyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event records a rejected command.
func (e RequestingBookCopyFailed) IsErrorEvent() bool {
	return true
}
