package requestedbooks_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/approvebookrequest"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/cancelbookrequest"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/requestbookcopy"
	"github.com/AntonStoeckl/library-latefees-go/library/features/query/requestedbooks"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_QueryHandler_Handle_ReturnsOpenRequests(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	readerID := testutil.GivenUniqueID(t)
	approvedID, canceledID := testutil.GivenUniqueID(t), testutil.GivenUniqueID(t)

	_, err := registerreader.NewCommandHandler(es).Handle(ctx, registerreader.BuildCommand(readerID, "Jane Doe", fakeClock))
	require.NoError(t, err, "error in arranging test data")

	add := addbookcopy.NewCommandHandler(es)
	_, err = add.Handle(ctx, addbookcopy.BuildCommand(approvedID, "978-1-098-10013-1", "Learning Domain-Driven Design", "Vlad Khononov", "Software Engineering", fakeClock))
	require.NoError(t, err, "error in arranging test data")
	_, err = add.Handle(ctx, addbookcopy.BuildCommand(canceledID, "978-0-201-63361-0", "Design Patterns", "Gang of Four", "Programming", fakeClock))
	require.NoError(t, err, "error in arranging test data")

	request := requestbookcopy.NewCommandHandler(es)
	_, err = request.Handle(ctx, requestbookcopy.BuildCommand(approvedID, readerID, fakeClock.Add(time.Hour)))
	require.NoError(t, err, "error in arranging test data")
	_, err = request.Handle(ctx, requestbookcopy.BuildCommand(canceledID, readerID, fakeClock.Add(time.Hour)))
	require.NoError(t, err, "error in arranging test data")

	_, err = approvebookrequest.NewCommandHandler(es).Handle(ctx, approvebookrequest.BuildCommand(approvedID, readerID, fakeClock.Add(2*time.Hour)))
	require.NoError(t, err, "error in arranging test data")
	_, err = cancelbookrequest.NewCommandHandler(es).Handle(ctx, cancelbookrequest.BuildCommand(canceledID, readerID, fakeClock.Add(2*time.Hour)))
	require.NoError(t, err, "error in arranging test data")

	// act
	result, err := requestedbooks.NewQueryHandler(es).Handle(ctx, requestedbooks.BuildQuery(readerID))

	// assert
	require.NoError(t, err)
	require.Len(t, result.Books, 1)
	assert.Equal(t, approvedID.String(), result.Books[0].BookID)
	assert.Equal(t, "Learning Domain-Driven Design", result.Books[0].Title)
	assert.True(t, result.Books[0].IsApproved)
}
