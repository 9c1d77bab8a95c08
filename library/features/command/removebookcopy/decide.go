package removebookcopy

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const (
	failureBookNeverAdded    = "book was never added to circulation"
	failureBookCurrentlyLent = "book is currently lent"
)

type state struct {
	everAdded       bool
	inCirculation   bool
	isCurrentlyLent bool
}

// Decide removes the book copy from circulation.
//
//	GIVEN: A book copy with BookID
//	WHEN: RemoveBookCopy command is received
//	THEN: BookCopyRemovedFromCirculation event is generated
//	ERROR: "book was never added to circulation" if the book copy is unknown
//	ERROR: "book is currently lent" if the book copy is lent to a reader
//	IDEMPOTENCY: If the book copy is removed already, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	switch {
	case !s.everAdded:
		return failed(command, failureBookNeverAdded)
	case !s.inCirculation:
		return core.IdempotentDecision()
	case s.isCurrentlyLent:
		return failed(command, failureBookCurrentlyLent)
	}

	return core.SuccessDecision(core.BuildBookCopyRemovedFromCirculation(command.BookID, command.OccurredAt))
}

func failed(command Command, failureInfo string) core.DecisionResult {
	event := core.BuildRemovingBookFromCirculationFailed(command.BookID, failureInfo, command.OccurredAt)

	return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureInfo})
}

// project expects a history already narrowed to this book copy, see BuildEventFilter.
func project(history core.DomainEvents) state {
	s := state{}

	for _, event := range history {
		switch event.(type) {
		case core.BookCopyAddedToCirculation:
			s.everAdded = true
			s.inCirculation = true

		case core.BookCopyRemovedFromCirculation:
			s.inCirculation = false

		case core.BookCopyLentToReader:
			s.isCurrentlyLent = true

		case core.BookCopyReturnedByReader:
			s.isCurrentlyLent = false
		}
	}

	return s
}
