package latefeeschedule

import (
	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// ProjectLateFeeSchedule returns the latest configured schedule.
func ProjectLateFeeSchedule(history core.DomainEvents, maxSequenceNumber eventstore.MaxSequenceNumberUint) LateFeeSchedule {
	result := LateFeeSchedule{SequenceNumber: maxSequenceNumber}

	for _, event := range history {
		if e, ok := event.(core.LateFeeScheduleConfigured); ok {
			result.Available = true
			result.Schedule = e.Schedule()
			result.ConfiguredAt = e.OccurredAt
		}
	}

	return result
}

// BuildEventFilter selects all schedule changes.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.LateFeeScheduleConfiguredEventType).
		Finalize()
}
