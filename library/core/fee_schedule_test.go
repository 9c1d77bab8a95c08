package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

func Test_BuildFeeSchedule(t *testing.T) {
	// act
	schedule, err := core.BuildFeeSchedule(core.AmountFromInt(50), decimal.RequireFromString("10.50"))

	// assert
	require.NoError(t, err)
	assert.True(t, schedule.Equal(core.FeeSchedule{
		InitialFee:       decimal.RequireFromString("50.00"),
		FollowingDateFee: decimal.RequireFromString("10.5"),
	}))
}

func Test_BuildFeeSchedule_ShouldFail_ForNegativeFees(t *testing.T) {
	// act
	_, err := core.BuildFeeSchedule(core.AmountFromInt(50), core.AmountFromInt(-1))

	// assert
	assert.ErrorIs(t, err, core.ErrNegativeAmount)
	assert.ErrorContains(t, err, "followingDateFee")
}

func Test_ParseAmount(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		expectedErr error
	}{
		{input: "12.50", expected: "12.5"},
		{input: "0", expected: "0"},
		{input: "-1", expectedErr: core.ErrNegativeAmount},
		{input: "ten", expectedErr: core.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			amount, err := core.ParseAmount("initialFee", tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.True(t, core.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assertAmount(t, tc.expected, amount)
		})
	}
}
