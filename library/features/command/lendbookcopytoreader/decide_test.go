package lendbookcopytoreader_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/lendbookcopytoreader"
)

var fakeClock = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func givenBookAndReader(bookID uuid.UUID, readerID uuid.UUID) core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(bookID, "978-0-13-468599-1", "The Go Programming Language", "Donovan, Kernighan", "Programming", fakeClock.Add(-48*time.Hour)),
		core.BuildReaderRegistered(readerID, "Jane Doe", fakeClock.Add(-24*time.Hour)),
	}
}

func Test_Decide_Success_WithDueDate(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	dueAt := fakeClock.Add(14 * 24 * time.Hour)

	// act
	result := lendbookcopytoreader.Decide(
		givenBookAndReader(bookID, readerID),
		lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock),
		dueAt,
	)

	// assert
	require.Equal(t, core.SuccessOutcome, result.Outcome)
	event, ok := result.Event.(core.BookCopyLentToReader)
	require.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, readerID.String(), event.ReaderID)
	assert.True(t, dueAt.Equal(event.DueAt))
}

func Test_Decide_Idempotent_WhenAlreadyLentToThisReader(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := append(
		givenBookAndReader(bookID, readerID),
		core.BuildBookCopyLentToReader(bookID, readerID, fakeClock.Add(time.Hour), fakeClock.Add(-time.Hour)),
	)

	// act
	result := lendbookcopytoreader.Decide(history, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock), fakeClock)

	// assert
	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Errors(t *testing.T) {
	bookID, readerID, otherReaderID := uuid.New(), uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		history     core.DomainEvents
		failureInfo string
	}{
		{
			name:        "book not in circulation",
			history:     core.DomainEvents{core.BuildReaderRegistered(readerID, "Jane Doe", fakeClock)},
			failureInfo: "book is not in circulation",
		},
		{
			name: "book lent to another reader",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyLentToReader(bookID, otherReaderID, fakeClock, fakeClock.Add(-time.Hour)),
			),
			failureInfo: "book is already lent",
		},
		{
			name: "book removed from circulation",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyRemovedFromCirculation(bookID, fakeClock.Add(-time.Hour)),
			),
			failureInfo: "book is not in circulation",
		},
		{
			name: "book reserved for another reader",
			history: append(
				givenBookAndReader(bookID, readerID),
				core.BuildBookCopyRequestedByReader(bookID, otherReaderID, fakeClock.Add(-2*time.Hour)),
				core.BuildBookCopyRequestApproved(bookID, otherReaderID, fakeClock.Add(-time.Hour)),
			),
			failureInfo: "book is reserved for another reader",
		},
		{
			name: "reader not registered",
			history: core.DomainEvents{
				core.BuildBookCopyAddedToCirculation(bookID, "isbn", "title", "author", "category", fakeClock),
			},
			failureInfo: "reader is not registered",
		},
		{
			name:        "reader has too many books",
			history:     append(givenBookAndReader(bookID, readerID), givenLoansOfOtherBooks(readerID, 10)...),
			failureInfo: "reader has too many books",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := lendbookcopytoreader.Decide(tc.history, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock), fakeClock)

			// assert
			require.Equal(t, core.ErrorOutcome, result.Outcome)
			assert.True(t, result.HasEventToAppend())

			event, ok := result.Event.(core.LendingBookToReaderFailed)
			require.True(t, ok)
			assert.Equal(t, tc.failureInfo, event.FailureInfo)
			assert.True(t, event.IsErrorEvent())

			var violation core.RuleViolation
			require.ErrorAs(t, result.HasError(), &violation)
			assert.Equal(t, "LendingBookToReaderFailed: "+tc.failureInfo, violation.Error())
		})
	}
}

func Test_Decide_Success_WhenReaderReturnedBooksBelowLimit(t *testing.T) {
	// arrange
	bookID, readerID := uuid.New(), uuid.New()
	history := append(givenBookAndReader(bookID, readerID), givenLoansOfOtherBooks(readerID, 10)...)

	for _, event := range history {
		if lent, ok := event.(core.BookCopyLentToReader); ok {
			history = append(history, core.BookCopyReturnedByReader{BookID: lent.BookID, ReaderID: lent.ReaderID, OccurredAt: fakeClock})
			break
		}
	}

	// act
	result := lendbookcopytoreader.Decide(history, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock), fakeClock)

	// assert
	assert.Equal(t, core.SuccessOutcome, result.Outcome)
}

func givenLoansOfOtherBooks(readerID uuid.UUID, count int) core.DomainEvents {
	events := make(core.DomainEvents, 0, count)

	for range count {
		events = append(events, core.BuildBookCopyLentToReader(uuid.New(), readerID, fakeClock, fakeClock.Add(-time.Hour)))
	}

	return events
}

func Test_Decide_Success_WhenBookIsReservedForThisReader(t *testing.T) {
	// arrange
	bookID, readerID, otherReaderID := uuid.New(), uuid.New(), uuid.New()
	history := append(
		givenBookAndReader(bookID, readerID),
		core.BuildBookCopyRequestApproved(bookID, otherReaderID, fakeClock.Add(-3*time.Hour)),
		core.BuildBookCopyRequestCanceled(bookID, otherReaderID, fakeClock.Add(-2*time.Hour)),
		core.BuildBookCopyRequestApproved(bookID, readerID, fakeClock.Add(-time.Hour)),
	)

	// act
	result := lendbookcopytoreader.Decide(history, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock), fakeClock)

	// assert
	assert.Equal(t, core.SuccessOutcome, result.Outcome)
}
