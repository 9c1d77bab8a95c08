package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyAddedToCirculationEventType is the event type identifier.
const BookCopyAddedToCirculationEventType = "BookCopyAddedToCirculation"

// BookCopyAddedToCirculation represents when a book copy is added to library circulation.
type BookCopyAddedToCirculation struct {
	BookID     BookIDString
	ISBN       ISBNString
	Title      string
	Authors    string
	Category   string
	OccurredAt OccurredAtTS
}

// BuildBookCopyAddedToCirculation creates a new BookCopyAddedToCirculation event.
func BuildBookCopyAddedToCirculation(
	bookID uuid.UUID,
	isbn string,
	title string,
	authors string,
	category string,
	occurredAt time.Time,
) BookCopyAddedToCirculation {

	return BookCopyAddedToCirculation{
		BookID:     bookID.String(),
		ISBN:       isbn,
		Title:      title,
		Authors:    authors,
		Category:   category,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyAddedToCirculation) EventType() string {
	return BookCopyAddedToCirculationEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyAddedToCirculation) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyAddedToCirculation) IsErrorEvent() bool {
	return false
}
