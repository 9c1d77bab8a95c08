package removebookcopy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/lendbookcopytoreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/removebookcopy"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_CommandHandler_Handle_RemovesAndIsIdempotent(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID := testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	handler := removebookcopy.NewCommandHandler(es)
	command := removebookcopy.BuildCommand(bookID, fakeClock.Add(time.Hour))

	// act
	first, firstErr := handler.Handle(ctx, command)
	second, secondErr := handler.Handle(ctx, command)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)

	storableEvents, _, err := es.Query(ctx, removebookcopy.BuildEventFilter(bookID))
	require.NoError(t, err)
	require.Len(t, storableEvents, 2)
	assert.Equal(t, core.BookCopyRemovedFromCirculationEventType, storableEvents[1].EventType)
}

func Test_CommandHandler_Handle_RecordsFailure_WhenBookIsLent(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID, readerID := testutil.GivenUniqueID(t), testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = registerreader.NewCommandHandler(es).Handle(ctx, registerreader.BuildCommand(readerID, "Jane Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = lendbookcopytoreader.NewCommandHandler(es).Handle(ctx, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock.Add(time.Hour)))
	require.NoError(t, err, "error in arranging test data")

	// act
	_, err = removebookcopy.NewCommandHandler(es).Handle(ctx, removebookcopy.BuildCommand(bookID, fakeClock.Add(2*time.Hour)))

	// assert
	var violation core.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, core.RemovingBookFromCirculationFailedEventType, violation.EventType)

	failures, _, queryErr := es.Query(ctx, eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.RemovingBookFromCirculationFailedEventType).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
		Finalize())
	require.NoError(t, queryErr)
	assert.Len(t, failures, 1)
}

func Test_CommandHandler_Handle_RemovedBookCannotBeLent(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID, readerID := testutil.GivenUniqueID(t), testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = registerreader.NewCommandHandler(es).Handle(ctx, registerreader.BuildCommand(readerID, "Jane Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = removebookcopy.NewCommandHandler(es).Handle(ctx, removebookcopy.BuildCommand(bookID, fakeClock.Add(time.Hour)))
	require.NoError(t, err, "error in arranging test data")

	// act
	_, err = lendbookcopytoreader.NewCommandHandler(es).Handle(ctx, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock.Add(2*time.Hour)))

	// assert
	assert.EqualError(t, err, "LendingBookToReaderFailed: book is not in circulation")
}
