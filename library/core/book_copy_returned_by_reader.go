package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCopyReturnedByReaderEventType is the event type identifier.
const BookCopyReturnedByReaderEventType = "BookCopyReturnedByReader"

// BookCopyReturnedByReader represents when a book copy is returned by a reader.
// LateFee is final, it is what the reader owes for this loan from now on.
type BookCopyReturnedByReader struct {
	BookID     BookIDString
	ReaderID   ReaderIDString
	LateFee    Amount
	OccurredAt OccurredAtTS
}

// BuildBookCopyReturnedByReader creates a new BookCopyReturnedByReader event.
func BuildBookCopyReturnedByReader(
	bookID uuid.UUID,
	readerID uuid.UUID,
	lateFee Amount,
	occurredAt time.Time,
) BookCopyReturnedByReader {

	return BookCopyReturnedByReader{
		BookID:     bookID.String(),
		ReaderID:   readerID.String(),
		LateFee:    lateFee,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// Validate rejects a negative late fee.
func (e BookCopyReturnedByReader) Validate() error {
	if e.LateFee.IsNegative() {
		return newValidationError("lateFee", e.LateFee.String(), ErrNegativeAmount)
	}

	return nil
}

// EventType returns the event type identifier.
func (e BookCopyReturnedByReader) EventType() string {
	return BookCopyReturnedByReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyReturnedByReader) IsErrorEvent() bool {
	return false
}
