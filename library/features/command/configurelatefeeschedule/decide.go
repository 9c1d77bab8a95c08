package configurelatefeeschedule

import (
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// Decide configures the schedule unless the current one has the same fees.
//
//	WHEN: ConfigureLateFeeSchedule command is received
//	THEN: LateFeeScheduleConfigured event is generated
//	IDEMPOTENCY: If the latest configured schedule has the same fees, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	var current *core.FeeSchedule

	for _, event := range history {
		if e, ok := event.(core.LateFeeScheduleConfigured); ok {
			schedule := e.Schedule()
			current = &schedule
		}
	}

	if current != nil && current.Equal(command.Schedule) {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildLateFeeScheduleConfigured(command.Schedule, command.OccurredAt))
}
