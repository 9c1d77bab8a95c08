package approvebookrequest

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const (
	failureNotRequested         = "book is not requested by this reader"
	failureBookNotInCirculation = "book is not in circulation"
	failureBookReserved         = "book is reserved for another reader"
)

type state struct {
	bookIsInCirculation bool
	requestIsOpen       bool
	reservedFor         core.ReaderIDString
}

// Decide approves the open request of the reader for the book copy.
//
//	GIVEN: A reader with ReaderID with an open request for a book copy with BookID
//	WHEN: ApproveBookRequest command is received
//	THEN: BookCopyRequestApproved event is generated
//	ERROR: "book is not requested by this reader" if there is no open request
//	ERROR: "book is not in circulation" if the book copy is removed
//	ERROR: "book is reserved for another reader" if another reader's request is approved and open
//	IDEMPOTENCY: If the request is approved already, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	readerID := command.ReaderID.String()
	s := project(history, readerID)

	switch {
	case !s.requestIsOpen:
		return failed(command, failureNotRequested)
	case s.reservedFor == readerID:
		return core.IdempotentDecision()
	case !s.bookIsInCirculation:
		return failed(command, failureBookNotInCirculation)
	case s.reservedFor != "":
		return failed(command, failureBookReserved)
	}

	return core.SuccessDecision(core.BuildBookCopyRequestApproved(command.BookID, command.ReaderID, command.OccurredAt))
}

func failed(command Command, failureInfo string) core.DecisionResult {
	event := core.BuildApprovingBookRequestFailed(command.BookID, command.ReaderID, failureInfo, command.OccurredAt)

	return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureInfo})
}

// project expects the requests of this reader and the book copy's history, see BuildEventFilter.
func project(history core.DomainEvents, readerID string) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			s.bookIsInCirculation = true

		case core.BookCopyRemovedFromCirculation:
			s.bookIsInCirculation = false

		case core.BookCopyRequestedByReader:
			s.requestIsOpen = true

		case core.BookCopyRequestApproved:
			s.reservedFor = e.ReaderID

		case core.BookCopyRequestCanceled:
			if e.ReaderID == readerID {
				s.requestIsOpen = false
			}

			if e.ReaderID == s.reservedFor {
				s.reservedFor = ""
			}

		case core.BookCopyLentToReader:
			if e.ReaderID == readerID {
				s.requestIsOpen = false
			}

			if e.ReaderID == s.reservedFor {
				s.reservedFor = ""
			}
		}
	}

	return s
}
