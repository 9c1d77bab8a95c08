package borrowedbooks

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// BorrowedBook is one loan of a book copy.
type BorrowedBook struct {
	BookID     core.BookIDString
	ISBN       core.ISBNString
	Title      string
	Authors    string
	Category   string
	LentAt     time.Time
	DueAt      time.Time
	IsReturned bool
	ReturnedAt time.Time // zero while the loan is open
	Fee        core.Amount
}

// BorrowedBooks is the result of the BorrowedBooks query, loans are ordered by LentAt.
type BorrowedBooks struct {
	ReaderID          core.ReaderIDString
	Books             []BorrowedBook
	Count             int
	TotalFee          core.Amount
	ScheduleAvailable bool
	SequenceNumber    eventstore.MaxSequenceNumberUint
}

// Unreturned returns the open loans.
func (r BorrowedBooks) Unreturned() []BorrowedBook {
	open := make([]BorrowedBook, 0, len(r.Books))

	for _, book := range r.Books {
		if !book.IsReturned {
			open = append(open, book)
		}
	}

	return open
}

// OnlyUnreturned narrows the result to the open loans, Count and TotalFee follow.
func (r BorrowedBooks) OnlyUnreturned() BorrowedBooks {
	narrowed := r
	narrowed.Books = r.Unreturned()
	narrowed.Count = len(narrowed.Books)
	narrowed.TotalFee = core.ZeroAmount

	for _, book := range narrowed.Books {
		narrowed.TotalFee = narrowed.TotalFee.Add(book.Fee)
	}

	return narrowed
}
