package latefeeschedule

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

// LateFeeSchedule is the result of the LateFeeSchedule query.
// Schedule and ConfiguredAt are zero values if Available is false.
type LateFeeSchedule struct {
	Available      bool
	Schedule       core.FeeSchedule
	ConfiguredAt   time.Time
	SequenceNumber eventstore.MaxSequenceNumberUint
}

// FeeSchedule returns the schedule in the form the late fee calculator expects, nil if unavailable.
func (r LateFeeSchedule) FeeSchedule() *core.FeeSchedule {
	if !r.Available {
		return nil
	}

	schedule := r.Schedule

	return &schedule
}
