package core

import (
	"time"
)

// LateFeeScheduleConfiguredEventType is the event type identifier.
const LateFeeScheduleConfiguredEventType = "LateFeeScheduleConfigured"

// LateFeeScheduleConfigured represents when the library sets its late fee schedule. The latest one wins.
type LateFeeScheduleConfigured struct {
	InitialFee       Amount
	FollowingDateFee Amount
	OccurredAt       OccurredAtTS
}

// BuildLateFeeScheduleConfigured creates a new LateFeeScheduleConfigured event.
func BuildLateFeeScheduleConfigured(schedule FeeSchedule, occurredAt time.Time) LateFeeScheduleConfigured {
	return LateFeeScheduleConfigured{
		InitialFee:       schedule.InitialFee,
		FollowingDateFee: schedule.FollowingDateFee,
		OccurredAt:       ToOccurredAt(occurredAt),
	}
}

// Schedule returns the configured FeeSchedule.
func (e LateFeeScheduleConfigured) Schedule() FeeSchedule {
	return FeeSchedule{InitialFee: e.InitialFee, FollowingDateFee: e.FollowingDateFee}
}

// EventType returns the event type identifier.
func (e LateFeeScheduleConfigured) EventType() string {
	return LateFeeScheduleConfiguredEventType
}

// HasOccurredAt returns when this event occurred.
func (e LateFeeScheduleConfigured) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LateFeeScheduleConfigured) IsErrorEvent() bool {
	return false
}
