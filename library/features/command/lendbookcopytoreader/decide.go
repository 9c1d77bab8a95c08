package lendbookcopytoreader

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// MaxBooksPerReader is how many book copies a reader may have lent at the same time.
const MaxBooksPerReader = 10

const (
	failureBookNotInCirculation = "book is not in circulation"
	failureBookAlreadyLent      = "book is already lent"
	failureBookReserved         = "book is reserved for another reader"
	failureReaderNotRegistered  = "reader is not registered"
	failureTooManyBooks         = "reader has too many books"
)

type state struct {
	bookIsInCirculation       bool
	bookIsLentToThisReader    bool
	bookIsLentToAnotherReader bool
	bookIsReservedFor         core.ReaderIDString
	readerIsRegistered        bool
	readerCurrentBookCount    int
}

// Decide lends the book copy until dueAt.
//
//	GIVEN: A book copy with BookID and a reader with ReaderID
//	WHEN: LendBookCopyToReader command is received
//	THEN: BookCopyLentToReader event is generated
//	ERROR: "book is not in circulation" if the book copy was never added or is removed
//	ERROR: "book is already lent" if the book copy is lent to any other reader
//	ERROR: "book is reserved for another reader" if an approved request of another reader is open
//	ERROR: "reader is not registered" if the reader was never registered
//	ERROR: "reader has too many books" if the reader already has MaxBooksPerReader books
//	IDEMPOTENCY: If the book copy is lent to this reader, no event is generated
func Decide(history core.DomainEvents, command Command, dueAt time.Time) core.DecisionResult {
	s := project(history, command.BookID.String(), command.ReaderID.String())

	switch {
	case s.bookIsLentToThisReader:
		return core.IdempotentDecision()
	case !s.bookIsInCirculation:
		return failed(command, failureBookNotInCirculation)
	case s.bookIsLentToAnotherReader:
		return failed(command, failureBookAlreadyLent)
	case s.bookIsReservedFor != "" && s.bookIsReservedFor != command.ReaderID.String():
		return failed(command, failureBookReserved)
	case !s.readerIsRegistered:
		return failed(command, failureReaderNotRegistered)
	case s.readerCurrentBookCount >= MaxBooksPerReader:
		return failed(command, failureTooManyBooks)
	}

	return core.SuccessDecision(
		core.BuildBookCopyLentToReader(command.BookID, command.ReaderID, dueAt, command.OccurredAt),
	)
}

func failed(command Command, failureInfo string) core.DecisionResult {
	event := core.BuildLendingBookToReaderFailed(command.BookID, command.ReaderID, failureInfo, command.OccurredAt)

	return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureInfo})
}

func project(history core.DomainEvents, bookID string, readerID string) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			if e.BookID == bookID {
				s.bookIsInCirculation = true
			}

		case core.BookCopyRemovedFromCirculation:
			if e.BookID == bookID {
				s.bookIsInCirculation = false
			}

		case core.ReaderRegistered:
			if e.ReaderID == readerID {
				s.readerIsRegistered = true
			}

		case core.BookCopyRequestApproved:
			if e.BookID == bookID {
				s.bookIsReservedFor = e.ReaderID
			}

		case core.BookCopyRequestCanceled:
			if e.BookID == bookID && e.ReaderID == s.bookIsReservedFor {
				s.bookIsReservedFor = ""
			}

		case core.BookCopyLentToReader:
			if e.BookID == bookID {
				if e.ReaderID == s.bookIsReservedFor {
					s.bookIsReservedFor = ""
				}

				s.bookIsLentToThisReader = e.ReaderID == readerID
				s.bookIsLentToAnotherReader = e.ReaderID != readerID
			}

			if e.ReaderID == readerID {
				s.readerCurrentBookCount++
			}

		case core.BookCopyReturnedByReader:
			if e.BookID == bookID {
				s.bookIsLentToThisReader = false
				s.bookIsLentToAnotherReader = false
			}

			if e.ReaderID == readerID {
				s.readerCurrentBookCount--
			}
		}
	}

	return s
}
