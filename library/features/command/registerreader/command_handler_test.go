package registerreader_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/features/command/registerreader"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_CommandHandler_Handle_RegistersReaderOnce(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := testutil.GivenMemoryEventStore(t)
	handler := registerreader.NewCommandHandler(es)
	readerID := testutil.GivenUniqueID(t)
	command := registerreader.BuildCommand(readerID, "Jane Doe", time.Now())

	// act
	first, firstErr := handler.Handle(ctx, command)
	second, secondErr := handler.Handle(ctx, command)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)

	storableEvents, _, err := es.Query(ctx, registerreader.BuildEventFilter(readerID))
	require.NoError(t, err)
	require.Len(t, storableEvents, 1)

	domainEvent, err := shell.DomainEventFrom(storableEvents[0])
	require.NoError(t, err)
	assert.False(t, domainEvent.IsErrorEvent())
}

func Test_CommandHandler_Handle_FailsFast_WhenContextIsCanceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	handler := registerreader.NewCommandHandler(testutil.GivenMemoryEventStore(t))

	// act
	result, err := handler.Handle(ctx, registerreader.BuildCommand(testutil.GivenUniqueID(t), "Jane Doe", time.Now()))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Equal(t, shell.ErrorTypeCanceled, result.LastErrorType)
}
