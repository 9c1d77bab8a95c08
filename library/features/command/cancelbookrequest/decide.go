package cancelbookrequest

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const failureNotRequested = "book is not requested by this reader"

// Decide cancels the open request of the reader for the book copy.
//
//	GIVEN: A reader with ReaderID who requested a book copy with BookID
//	WHEN: CancelBookRequest command is received
//	THEN: BookCopyRequestCanceled event is generated
//	ERROR: "book is not requested by this reader" if the reader never requested the book copy
//	IDEMPOTENCY: If the last request is canceled or fulfilled by a loan, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	everRequested, requestIsOpen := false, false

	for _, event := range history {
		switch event.(type) {
		case core.BookCopyRequestedByReader:
			everRequested, requestIsOpen = true, true

		case core.BookCopyRequestCanceled, core.BookCopyLentToReader:
			requestIsOpen = false
		}
	}

	if !everRequested {
		event := core.BuildCancelingBookRequestFailed(command.BookID, command.ReaderID, failureNotRequested, command.OccurredAt)

		return core.ErrorDecision(event, core.RuleViolation{EventType: event.EventType(), FailureInfo: failureNotRequested})
	}

	if !requestIsOpen {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildBookCopyRequestCanceled(command.BookID, command.ReaderID, command.OccurredAt))
}
