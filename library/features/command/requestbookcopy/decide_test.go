package requestbookcopy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/requestbookcopy"
)

var fakeClock = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func givenBookAndReader(bookID uuid.UUID, readerID uuid.UUID) core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(bookID, "978-0-13-468599-1", "The Go Programming Language", "Donovan, Kernighan", "Programming", fakeClock.Add(-48*time.Hour)),
		core.BuildReaderRegistered(readerID, "Jane Doe", fakeClock.Add(-24*time.Hour)),
	}
}

func Test_Decide_Success_WhenBookInCirculationAndReaderRegistered(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()

	// act
	result := requestbookcopy.Decide(givenBookAndReader(bookID, readerID), requestbookcopy.BuildCommand(bookID, readerID, fakeClock))

	// assert
	require.Equal(t, core.SuccessOutcome, result.Outcome)
	event, ok := result.Event.(core.BookCopyRequestedByReader)
	require.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, readerID.String(), event.ReaderID)
	assert.True(t, fakeClock.Equal(event.OccurredAt))
}

func Test_Decide_Success_WhenEarlierRequestWasFulfilledOrCanceled(t *testing.T) {
	bookID, readerID := uuid.New(), uuid.New()

	testCases := []struct {
		name    string
		history core.DomainEvents
	}{
		{
			name: "canceled",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyRequestedByReader(bookID, readerID, fakeClock.Add(-2*time.Hour)),
				core.BuildBookCopyRequestCanceled(bookID, readerID, fakeClock.Add(-time.Hour)),
			),
		},
		{
			name: "fulfilled and returned",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyRequestedByReader(bookID, readerID, fakeClock.Add(-3*time.Hour)),
				core.BuildBookCopyLentToReader(bookID, readerID, fakeClock, fakeClock.Add(-2*time.Hour)),
				core.BuildBookCopyReturnedByReader(bookID, readerID, core.ZeroAmount, fakeClock.Add(-time.Hour)),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := requestbookcopy.Decide(tc.history, requestbookcopy.BuildCommand(bookID, readerID, fakeClock))

			// assert
			assert.Equal(t, core.SuccessOutcome, result.Outcome)
		})
	}
}

func Test_Decide_Idempotent_WhenRequestIsOpen(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := append(
		givenBookAndReader(bookID, readerID),
		core.BuildBookCopyRequestedByReader(bookID, readerID, fakeClock.Add(-time.Hour)),
	)

	// act
	result := requestbookcopy.Decide(history, requestbookcopy.BuildCommand(bookID, readerID, fakeClock))

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Errors(t *testing.T) {
	bookID, readerID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		failureInfo string
	}{
		{
			name:        "book never added",
			history:     core.DomainEvents{core.BuildReaderRegistered(readerID, "Jane Doe", fakeClock)},
			failureInfo: "book is not in circulation",
		},
		{
			name: "book removed",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyRemovedFromCirculation(bookID, fakeClock.Add(-time.Hour)),
			),
			failureInfo: "book is not in circulation",
		},
		{
			name: "reader not registered",
			history: core.DomainEvents{
				core.BuildBookCopyAddedToCirculation(bookID, "isbn", "title", "author", "category", fakeClock),
			},
			failureInfo: "reader is not registered",
		},
		{
			name: "book lent to this reader",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyLentToReader(bookID, readerID, fakeClock.Add(time.Hour), fakeClock.Add(-time.Hour)),
			),
			failureInfo: "book is already lent to this reader",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := requestbookcopy.Decide(tc.history, requestbookcopy.BuildCommand(bookID, readerID, fakeClock))

			// assert
			require.Equal(t, core.ErrorOutcome, result.Outcome)
			event, ok := result.Event.(core.RequestingBookCopyFailed)
			require.True(t, ok)
			assert.Equal(t, tc.failureInfo, event.FailureInfo)
			assert.EqualError(t, result.HasError(), "RequestingBookCopyFailed: "+tc.failureInfo)
		})
	}
}
