package addbookcopy

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// Decide adds the book copy unless it is in circulation already.
// A removed book copy can be added again.
//
//	GIVEN: A book copy with BookID
//	WHEN: AddBookCopy command is received
//	THEN: BookCopyAddedToCirculation event is generated
//	IDEMPOTENCY: If the book copy is in circulation, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	bookID := command.BookID.String()
	inCirculation := false

	for _, event := range history {
		switch e := event.(type) {
		case core.BookCopyAddedToCirculation:
			if e.BookID == bookID {
				inCirculation = true
			}

		case core.BookCopyRemovedFromCirculation:
			if e.BookID == bookID {
				inCirculation = false
			}
		}
	}

	if inCirculation {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildBookCopyAddedToCirculation(
			command.BookID,
			command.ISBN,
			command.Title,
			command.Authors,
			command.Category,
			command.OccurredAt,
		),
	)
}
