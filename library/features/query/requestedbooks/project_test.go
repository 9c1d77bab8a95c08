package requestedbooks_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/requestedbooks"
)

var fakeClock = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func Test_ProjectRequestedBooks_ListsOpenRequestsWithApproval(t *testing.T) {
	// arrange
	readerID, otherReaderID := uuid.New(), uuid.New()
	pendingID, approvedID := uuid.New(), uuid.New()
	history := core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(approvedID, "978-1-098-10013-1", "Learning Domain-Driven Design", "Vlad Khononov", "Software Engineering", fakeClock),
		core.BuildBookCopyRequestedByReader(approvedID, readerID, fakeClock.Add(time.Hour)),
		core.BuildBookCopyRequestedByReader(pendingID, readerID, fakeClock.Add(2*time.Hour)),
		core.BuildBookCopyRequestApproved(pendingID, otherReaderID, fakeClock.Add(3*time.Hour)),
		core.BuildBookCopyRequestApproved(approvedID, readerID, fakeClock.Add(4*time.Hour)),
	}

	// act
	result := requestedbooks.ProjectRequestedBooks(history, requestedbooks.BuildQuery(readerID), 5)

	// assert
	require.Len(t, result.Books, 2)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, readerID.String(), result.ReaderID)
	assert.Equal(t, uint(5), uint(result.SequenceNumber))

	approved := result.Books[0]
	assert.Equal(t, approvedID.String(), approved.BookID)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, "Learning Domain-Driven Design", approved.Title)
	assert.True(t, fakeClock.Add(time.Hour).Equal(approved.RequestedAt))
	assert.True(t, fakeClock.Add(4*time.Hour).Equal(approved.UpdatedAt))

	pending := result.Books[1]
	assert.Equal(t, pendingID.String(), pending.BookID)
	assert.False(t, pending.IsApproved)
	assert.True(t, pending.RequestedAt.Equal(pending.UpdatedAt))
}

func Test_ProjectRequestedBooks_DropsClosedRequests(t *testing.T) {
	// arrange
	readerID := uuid.New()
	canceledID, fulfilledID, removedID := uuid.New(), uuid.New(), uuid.New()
	history := core.DomainEvents{
		core.BuildBookCopyRequestedByReader(canceledID, readerID, fakeClock),
		core.BuildBookCopyRequestedByReader(fulfilledID, readerID, fakeClock),
		core.BuildBookCopyRequestedByReader(removedID, readerID, fakeClock),
		core.BuildBookCopyRequestCanceled(canceledID, readerID, fakeClock.Add(time.Hour)),
		core.BuildBookCopyLentToReader(fulfilledID, readerID, fakeClock.AddDate(0, 0, 14), fakeClock.Add(time.Hour)),
		core.BuildBookCopyRemovedFromCirculation(removedID, fakeClock.Add(time.Hour)),
	}

	// act
	result := requestedbooks.ProjectRequestedBooks(history, requestedbooks.BuildQuery(readerID), 6)

	// assert
	assert.Empty(t, result.Books)
	assert.Equal(t, 0, result.Count)
}
