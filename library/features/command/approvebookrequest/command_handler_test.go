package approvebookrequest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/approvebookrequest"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/lendbookcopytoreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/requestbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_CommandHandler_Handle_ApprovedRequestReservesTheBook(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	bookID, readerID, otherReaderID := testutil.GivenUniqueID(t), testutil.GivenUniqueID(t), testutil.GivenUniqueID(t)
	_, err := addbookcopy.NewCommandHandler(es).Handle(ctx, addbookcopy.BuildCommand(bookID, "isbn", "title", "author", "category", fakeClock))
	require.NoError(t, err, "error in arranging test data")

	register := registerreader.NewCommandHandler(es)
	_, err = register.Handle(ctx, registerreader.BuildCommand(readerID, "Jane Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = register.Handle(ctx, registerreader.BuildCommand(otherReaderID, "John Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")

	_, err = requestbookcopy.NewCommandHandler(es).Handle(ctx, requestbookcopy.BuildCommand(bookID, readerID, fakeClock.Add(time.Hour)))
	require.NoError(t, err, "error in arranging test data")
	handler := approvebookrequest.NewCommandHandler(es)
	lend := lendbookcopytoreader.NewCommandHandler(es)

	// act
	first, firstErr := handler.Handle(ctx, approvebookrequest.BuildCommand(bookID, readerID, fakeClock.Add(2*time.Hour)))
	second, secondErr := handler.Handle(ctx, approvebookrequest.BuildCommand(bookID, readerID, fakeClock.Add(3*time.Hour)))
	_, lendToOtherErr := lend.Handle(ctx, lendbookcopytoreader.BuildCommand(bookID, otherReaderID, fakeClock.Add(4*time.Hour)))
	_, lendToRequesterErr := lend.Handle(ctx, lendbookcopytoreader.BuildCommand(bookID, readerID, fakeClock.Add(5*time.Hour)))

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)
	assert.EqualError(t, lendToOtherErr, "LendingBookToReaderFailed: book is reserved for another reader")
	assert.NoError(t, lendToRequesterErr)
}
