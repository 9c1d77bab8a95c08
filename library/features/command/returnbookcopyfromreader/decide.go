package returnbookcopyfromreader

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const failureBookNotLentToReader = "book is not lent to this reader"

type state struct {
	everLent bool
	isLent   bool
	dueAt    time.Time
	schedule *core.FeeSchedule
}

// Decide returns the book copy and records the late fee owed at return time.
//
//	GIVEN: A book copy with BookID lent to a reader with ReaderID
//	WHEN: ReturnBookCopyFromReader command is received
//	THEN: BookCopyReturnedByReader event with the late fee is generated
//	ERROR: "book is not lent to this reader" if the book copy was never lent to this reader
//	IDEMPOTENCY: If the last loan of the book copy to this reader is returned, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	if !s.everLent {
		return failed(command, failureBookNotLentToReader)
	}

	if !s.isLent {
		return core.IdempotentDecision()
	}

	lateFee, err := core.ComputeFee(false, s.dueAt, core.ZeroAmount, s.schedule, command.OccurredAt)
	if err != nil {
		return failed(command, err.Error())
	}

	return core.SuccessDecision(
		core.BuildBookCopyReturnedByReader(command.BookID, command.ReaderID, lateFee, command.OccurredAt),
	)
}

func failed(command Command, failureInfo string) core.DecisionResult {
	event := core.BuildReturningBookFromReaderFailed(command.BookID, command.ReaderID, failureInfo, command.OccurredAt)

	return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureInfo})
}

// project expects a history already narrowed to this book copy and reader, see BuildEventFilter.
func project(history core.DomainEvents) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyLentToReader:
			s.everLent = true
			s.isLent = true
			s.dueAt = e.DueAt

		case core.BookCopyReturnedByReader:
			s.isLent = false

		case core.LateFeeScheduleConfigured:
			schedule := e.Schedule()
			s.schedule = &schedule
		}
	}

	return s
}
