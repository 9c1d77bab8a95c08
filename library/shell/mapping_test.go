package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
)

func Test_StorableEventFrom_And_DomainEventFrom_KeepAllFields(t *testing.T) {
	bookID := uuid.New()
	readerID := uuid.New()
	at := time.Date(2025, 3, 10, 12, 0, 0, 123456789, time.UTC)
	schedule, err := core.BuildFeeSchedule(core.AmountFromInt(50), decimal.RequireFromString("10.25"))
	require.NoError(t, err)

	testCases := []core.DomainEvent{
		core.BuildBookCopyAddedToCirculation(bookID, "978-1-098-10013-1", "Learning Go", "Jon Bodner", "Programming", at),
		core.BuildReaderRegistered(readerID, "Ada Lovelace", at),
		core.BuildBookCopyLentToReader(bookID, readerID, at.AddDate(0, 0, 14), at),
		core.BuildBookCopyReturnedByReader(bookID, readerID, decimal.RequireFromString("60.00"), at),
		core.BuildLateFeeScheduleConfigured(schedule, at),
		core.BuildLendingBookToReaderFailed(bookID, readerID, "book is already lent", at),
		core.BuildReturningBookFromReaderFailed(bookID, readerID, "book is not lent to this reader", at),
		core.BuildBookCopyRemovedFromCirculation(bookID, at),
		core.BuildRemovingBookFromCirculationFailed(bookID, "book is currently lent", at),
		core.BuildBookCopyRequestedByReader(bookID, readerID, at),
		core.BuildBookCopyRequestApproved(bookID, readerID, at),
		core.BuildBookCopyRequestCanceled(bookID, readerID, at),
		core.BuildRequestingBookCopyFailed(bookID, readerID, "reader is not registered", at),
		core.BuildApprovingBookRequestFailed(bookID, readerID, "book is not requested by this reader", at),
		core.BuildCancelingBookRequestFailed(bookID, readerID, "book is not requested by this reader", at),
	}

	for _, event := range testCases {
		t.Run(event.EventType(), func(t *testing.T) {
			// act
			storable, toErr := shell.StorableEventFrom(event, shell.BuildInitialEventMetadata())
			require.NoError(t, toErr)
			mapped, fromErr := shell.DomainEventFrom(storable)
			require.NoError(t, fromErr)

			// assert
			assert.Equal(t, event.EventType(), storable.EventType)
			assert.True(t, event.HasOccurredAt().Equal(storable.OccurredAt))
			assert.IsType(t, event, mapped)
			assert.Equal(t, event.IsErrorEvent(), mapped.IsErrorEvent())
			assert.True(t, event.HasOccurredAt().Equal(mapped.HasOccurredAt()))
		})
	}
}

func Test_StorableEventFrom_UsesFieldNamesAsPayloadKeys(t *testing.T) {
	// arrange
	bookID := uuid.New()
	readerID := uuid.New()
	event := core.BuildBookCopyReturnedByReader(bookID, readerID, core.AmountFromInt(60), time.Unix(0, 0))

	// act
	storable, err := shell.StorableEventFrom(event, shell.BuildInitialEventMetadata())

	// assert
	require.NoError(t, err)
	assert.Contains(t, string(storable.PayloadJSON), `"BookID":"`+bookID.String()+`"`)
	assert.Contains(t, string(storable.PayloadJSON), `"ReaderID":"`+readerID.String()+`"`)
	assert.Contains(t, string(storable.PayloadJSON), `"LateFee":"60"`)
}

func Test_DomainEventFrom_KeepsAmountsExact(t *testing.T) {
	// arrange
	event := core.BuildBookCopyReturnedByReader(uuid.New(), uuid.New(), decimal.RequireFromString("0.10"), time.Unix(0, 0))
	storable, err := shell.StorableEventFrom(event, shell.BuildInitialEventMetadata())
	require.NoError(t, err)

	// act
	mapped, mapErr := shell.DomainEventFrom(storable)

	// assert
	require.NoError(t, mapErr)
	returned, ok := mapped.(core.BookCopyReturnedByReader)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.1").Equal(returned.LateFee))
}

func Test_DomainEventFrom_ShouldFail_ForUnknownEventType(t *testing.T) {
	// arrange
	storable, err := eventstore.BuildStorableEventWithEmptyMetadata("BookCopyPainted", time.Unix(0, 0), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, mapErr := shell.DomainEventFrom(storable)

	// assert
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventUnknownEventType)
	assert.ErrorContains(t, mapErr, "BookCopyPainted")
}

func Test_StorableEventFrom_ShouldFail_ForNegativeLateFee(t *testing.T) {
	// arrange
	event := core.BuildBookCopyReturnedByReader(uuid.New(), uuid.New(), core.AmountFromInt(-5), time.Unix(0, 0))

	// act
	_, err := shell.StorableEventFrom(event, shell.BuildInitialEventMetadata())

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToStorableEventFailedForDomainEvent)
	assert.ErrorIs(t, err, core.ErrNegativeAmount)
}

func Test_DomainEventFrom_ShouldFail_ForNegativeLateFee(t *testing.T) {
	// arrange
	storable, err := eventstore.BuildStorableEventWithEmptyMetadata(
		core.BookCopyReturnedByReaderEventType,
		time.Unix(0, 0),
		[]byte(`{"BookID":"b-1","ReaderID":"r-1","LateFee":"-5","OccurredAt":"2025-03-10T12:00:00Z"}`),
	)
	require.NoError(t, err)

	// act
	_, mapErr := shell.DomainEventFrom(storable)

	// assert
	assert.ErrorIs(t, mapErr, shell.ErrMappingToDomainEventFailed)
	assert.True(t, core.IsValidationError(mapErr))
}

func Test_EventMetadataFrom(t *testing.T) {
	// arrange
	messageID, causationID, correlationID := uuid.New(), uuid.New(), uuid.New()
	event := core.BuildReaderRegistered(uuid.New(), "Ada", time.Unix(0, 0))
	storable, err := shell.StorableEventFrom(event, shell.BuildEventMetadata(messageID, causationID, correlationID))
	require.NoError(t, err)

	// act
	metadata, metadataErr := shell.EventMetadataFrom(storable)

	// assert
	require.NoError(t, metadataErr)
	assert.Equal(t, messageID.String(), metadata.MessageID)
	assert.Equal(t, causationID.String(), metadata.CausationID)
	assert.Equal(t, correlationID.String(), metadata.CorrelationID)
}
