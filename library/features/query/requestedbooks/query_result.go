package requestedbooks

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// RequestedBook is one open request of the reader.
type RequestedBook struct {
	BookID      core.BookIDString
	ISBN        core.ISBNString
	Title       string
	Authors     string
	Category    string
	IsApproved  bool
	RequestedAt time.Time
	UpdatedAt   time.Time // approval time once approved, else RequestedAt
}

// RequestedBooks is the result of the RequestedBooks query, ordered by RequestedAt.
type RequestedBooks struct {
	ReaderID       core.ReaderIDString
	Books          []RequestedBook
	Count          int
	SequenceNumber eventstore.MaxSequenceNumberUint
}
