package requestbookcopy

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const (
	failureBookNotInCirculation = "book is not in circulation"
	failureReaderNotRegistered  = "reader is not registered"
	failureBookLentToReader     = "book is already lent to this reader"
)

type state struct {
	bookIsInCirculation    bool
	bookIsLentToThisReader bool
	readerIsRegistered     bool
	requestIsOpen          bool
}

// Decide opens a request of the reader for the book copy.
//
//	GIVEN: A book copy with BookID and a reader with ReaderID
//	WHEN: RequestBookCopy command is received
//	THEN: BookCopyRequestedByReader event is generated
//	ERROR: "book is not in circulation" if the book copy was never added or is removed
//	ERROR: "reader is not registered" if the reader was never registered
//	ERROR: "book is already lent to this reader" if the reader has the book copy
//	IDEMPOTENCY: If the reader has an open request for the book copy, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.ReaderID.String())

	switch {
	case s.requestIsOpen:
		return core.IdempotentDecision()
	case !s.bookIsInCirculation:
		return failed(command, failureBookNotInCirculation)
	case !s.readerIsRegistered:
		return failed(command, failureReaderNotRegistered)
	case s.bookIsLentToThisReader:
		return failed(command, failureBookLentToReader)
	}

	return core.SuccessDecision(
		core.BuildBookCopyRequestedByReader(command.BookID, command.ReaderID, command.OccurredAt),
	)
}

func failed(command Command, failureInfo string) core.DecisionResult {
	event := core.BuildRequestingBookCopyFailed(command.BookID, command.ReaderID, failureInfo, command.OccurredAt)

	return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureInfo})
}

// project expects a history already narrowed to this book copy and reader, see BuildEventFilter.
func project(history core.DomainEvents, readerID string) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			s.bookIsInCirculation = true

		case core.BookCopyRemovedFromCirculation:
			s.bookIsInCirculation = false

		case core.ReaderRegistered:
			s.readerIsRegistered = true

		case core.BookCopyRequestedByReader:
			s.requestIsOpen = true

		case core.BookCopyRequestCanceled:
			s.requestIsOpen = false

		case core.BookCopyLentToReader:
			s.bookIsLentToThisReader = e.ReaderID == readerID
			if s.bookIsLentToThisReader {
				s.requestIsOpen = false
			}

		case core.BookCopyReturnedByReader:
			s.bookIsLentToThisReader = false
		}
	}

	return s
}
