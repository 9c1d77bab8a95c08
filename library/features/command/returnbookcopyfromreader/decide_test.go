package returnbookcopyfromreader_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/returnbookcopyfromreader"
)

var (
	lentAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	dueAt  = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

func givenSchedule(t *testing.T, initialFee int64, followingDateFee int64) core.LateFeeScheduleConfigured {
	t.Helper()

	schedule, err := core.BuildFeeSchedule(core.AmountFromInt(initialFee), core.AmountFromInt(followingDateFee))
	require.NoError(t, err, "error in arranging test data")

	return core.BuildLateFeeScheduleConfigured(schedule, lentAt.Add(-time.Hour))
}

func assertReturnedWithFee(t *testing.T, result core.DecisionResult, expectedFee string) {
	t.Helper()

	require.Equal(t, core.SuccessOutcome, result.Outcome)
	event, ok := result.Event.(core.BookCopyReturnedByReader)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString(expectedFee).Equal(event.LateFee), "fee %s, expected %s", event.LateFee, expectedFee)
}

func Test_Decide_RecordsLateFee(t *testing.T) {
	bookID, readerID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		returnedAt  time.Time
		expectedFee string
	}{
		{name: "before due date", returnedAt: dueAt.Add(-24 * time.Hour), expectedFee: "0"},
		{name: "exactly at due date", returnedAt: dueAt, expectedFee: "0"},
		{name: "late less than a day", returnedAt: dueAt.Add(5 * time.Hour), expectedFee: "50"},
		{name: "one full day late", returnedAt: dueAt.Add(24 * time.Hour), expectedFee: "60"},
		{name: "three days late", returnedAt: dueAt.Add(72 * time.Hour), expectedFee: "80"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			history := core.DomainEvents{
				givenSchedule(t, 50, 10),
				core.BuildBookCopyLentToReader(bookID, readerID, dueAt, lentAt),
			}

			// act
			result := returnbookcopyfromreader.Decide(history, returnbookcopyfromreader.BuildCommand(bookID, readerID, tc.returnedAt))

			// assert
			assertReturnedWithFee(t, result, tc.expectedFee)
		})
	}
}

func Test_Decide_UsesLatestSchedule(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := core.DomainEvents{
		givenSchedule(t, 50, 10),
		core.BuildBookCopyLentToReader(bookID, readerID, dueAt, lentAt),
		givenSchedule(t, 5, 1),
	}

	// act
	result := returnbookcopyfromreader.Decide(history, returnbookcopyfromreader.BuildCommand(bookID, readerID, dueAt.Add(48*time.Hour)))

	// assert
	assertReturnedWithFee(t, result, "7")
}

func Test_Decide_RecordsZeroFee_WithoutSchedule(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := core.DomainEvents{core.BuildBookCopyLentToReader(bookID, readerID, dueAt, lentAt)}

	// act
	result := returnbookcopyfromreader.Decide(history, returnbookcopyfromreader.BuildCommand(bookID, readerID, dueAt.Add(30*24*time.Hour)))

	// assert
	assertReturnedWithFee(t, result, "0")
}

func Test_Decide_Idempotent_WhenAlreadyReturned(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := core.DomainEvents{
		core.BuildBookCopyLentToReader(bookID, readerID, dueAt, lentAt),
		core.BuildBookCopyReturnedByReader(bookID, readerID, core.ZeroAmount, dueAt),
	}

	// act
	result := returnbookcopyfromreader.Decide(history, returnbookcopyfromreader.BuildCommand(bookID, readerID, dueAt.Add(time.Hour)))

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenBookNotLentToReader(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := core.DomainEvents{givenSchedule(t, 50, 10)}

	// act
	result := returnbookcopyfromreader.Decide(history, returnbookcopyfromreader.BuildCommand(bookID, readerID, dueAt))

	// assert
	require.Equal(t, core.ErrorOutcome, result.Outcome)
	event, ok := result.Event.(core.ReturningBookFromReaderFailed)
	require.True(t, ok)
	assert.Equal(t, "book is not lent to this reader", event.FailureInfo)
	assert.EqualError(t, result.HasError(), "ReturningBookFromReaderFailed: book is not lent to this reader")
}
