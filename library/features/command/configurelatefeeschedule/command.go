package configurelatefeeschedule

import (
	"time"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

const commandType = "ConfigureLateFeeSchedule"

// Command represents the intent to change the late fee schedule.
type Command struct {
	Schedule   core.FeeSchedule
	OccurredAt core.OccurredAtTS
}

// BuildCommand rejects negative fees with a *core.ValidationError.
func BuildCommand(initialFee core.Amount, followingDateFee core.Amount, occurredAt time.Time) (Command, error) {
	schedule, err := core.BuildFeeSchedule(initialFee, followingDateFee)
	if err != nil {
		return Command{}, err
	}

	return Command{
		Schedule:   schedule,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}, nil
}

// CommandType returns the command type for logging.
func (c Command) CommandType() string {
	return commandType
}
