package registerreader

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// Decide registers the reader unless the reader is registered already.
//
//	GIVEN: A reader with ReaderID
//	WHEN: RegisterReader command is received
//	THEN: ReaderRegistered event is generated
//	IDEMPOTENCY: If the reader is registered, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	readerID := command.ReaderID.String()

	for _, event := range history {
		if e, ok := event.(core.ReaderRegistered); ok && e.ReaderID == readerID {
			return core.IdempotentDecision()
		}
	}

	return core.SuccessDecision(
		core.BuildReaderRegistered(command.ReaderID, command.Name, command.OccurredAt),
	)
}
