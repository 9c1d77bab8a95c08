package configurelatefeeschedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/configurelatefeeschedule"
)

var fakeClock = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func givenCommand(t *testing.T, initialFee string, followingDateFee string) configurelatefeeschedule.Command {
	t.Helper()

	command, err := configurelatefeeschedule.BuildCommand(
		decimal.RequireFromString(initialFee),
		decimal.RequireFromString(followingDateFee),
		fakeClock,
	)
	require.NoError(t, err, "error in arranging test data")

	return command
}

func Test_BuildCommand_RejectsNegativeFees(t *testing.T) {
	// act
	_, err := configurelatefeeschedule.BuildCommand(core.AmountFromInt(50), core.AmountFromInt(-1), fakeClock)

	// assert
	assert.ErrorIs(t, err, core.ErrNegativeAmount)

	var validationErr *core.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "followingDateFee", validationErr.Field)
}

func Test_Decide_Success_WhenNoScheduleConfigured(t *testing.T) {
	// act
	result := configurelatefeeschedule.Decide(nil, givenCommand(t, "50", "10"))

	// assert
	require.Equal(t, core.SuccessOutcome, result.Outcome)
	event, ok := result.Event.(core.LateFeeScheduleConfigured)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("50").Equal(event.InitialFee))
	assert.True(t, decimal.RequireFromString("10").Equal(event.FollowingDateFee))
}

func Test_Decide_ComparesWithLatestSchedule(t *testing.T) {
	testCases := []struct {
		name       string
		command    configurelatefeeschedule.Command
		idempotent bool
	}{
		{name: "same fees", command: givenCommand(t, "5.00", "1"), idempotent: true},
		{name: "earlier fees", command: givenCommand(t, "50", "10"), idempotent: false},
		{name: "other fees", command: givenCommand(t, "5", "2"), idempotent: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			history := core.DomainEvents{
				core.BuildLateFeeScheduleConfigured(givenCommand(t, "50", "10").Schedule, fakeClock.Add(-2*time.Hour)),
				core.BuildLateFeeScheduleConfigured(givenCommand(t, "5", "1").Schedule, fakeClock.Add(-time.Hour)),
			}

			// act
			result := configurelatefeeschedule.Decide(history, tc.command)

			// assert
			assert.Equal(t, tc.idempotent, result.IsIdempotent())
		})
	}
}
