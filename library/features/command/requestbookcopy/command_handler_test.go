package requestbookcopy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/requestbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_CommandHandler_Handle_RequestsAndIsIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID, readerID := testutil.GivenUniqueID(t), testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = registerreader.NewCommandHandler(es).Handle(ctx, registerreader.BuildCommand(readerID, "Jane Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	handler := requestbookcopy.NewCommandHandler(es)
	command := requestbookcopy.BuildCommand(bookID, readerID, fakeClock.Add(time.Hour))

	// act
	first, firstErr := handler.Handle(ctx, command)
	second, secondErr := handler.Handle(ctx, command)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)

	storableEvents, _, err := es.Query(ctx, requestbookcopy.BuildEventFilter(bookID, readerID))
	require.NoError(t, err)
	require.Len(t, storableEvents, 3)
	assert.Equal(t, core.BookCopyRequestedByReaderEventType, storableEvents[2].EventType)
}

func Test_CommandHandler_Handle_RecordsFailure_WhenReaderUnknown(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID := testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")

	// act
	_, err = requestbookcopy.NewCommandHandler(es).Handle(ctx, requestbookcopy.BuildCommand(bookID, testutil.GivenUniqueID(t), fakeClock))

	// assert
	var violation core.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, core.RequestingBookCopyFailedEventType, violation.EventType)
	assert.Equal(t, "reader is not registered", violation.FailureInfo)
}
