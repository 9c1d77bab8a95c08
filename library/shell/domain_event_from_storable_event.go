package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents, keeping their order.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookCopyAddedToCirculationEventType:
		return unmarshalPayload[core.BookCopyAddedToCirculation](storableEvent.PayloadJSON)

	case core.ReaderRegisteredEventType:
		return unmarshalPayload[core.ReaderRegistered](storableEvent.PayloadJSON)

	case core.BookCopyLentToReaderEventType:
		return unmarshalPayload[core.BookCopyLentToReader](storableEvent.PayloadJSON)

	case core.BookCopyReturnedByReaderEventType:
		return unmarshalValidPayload[core.BookCopyReturnedByReader](storableEvent.PayloadJSON)

	case core.LateFeeScheduleConfiguredEventType:
		return unmarshalPayload[core.LateFeeScheduleConfigured](storableEvent.PayloadJSON)

	case core.BookCopyRemovedFromCirculationEventType:
		return unmarshalPayload[core.BookCopyRemovedFromCirculation](storableEvent.PayloadJSON)

	case core.BookCopyRequestedByReaderEventType:
		return unmarshalPayload[core.BookCopyRequestedByReader](storableEvent.PayloadJSON)

	case core.BookCopyRequestCanceledEventType:
		return unmarshalPayload[core.BookCopyRequestCanceled](storableEvent.PayloadJSON)

	case core.BookCopyRequestApprovedEventType:
		return unmarshalPayload[core.BookCopyRequestApproved](storableEvent.PayloadJSON)

	case core.LendingBookToReaderFailedEventType:
		return unmarshalPayload[core.LendingBookToReaderFailed](storableEvent.PayloadJSON)

	case core.ReturningBookFromReaderFailedEventType:
		return unmarshalPayload[core.ReturningBookFromReaderFailed](storableEvent.PayloadJSON)

	case core.RemovingBookFromCirculationFailedEventType:
		return unmarshalPayload[core.RemovingBookFromCirculationFailed](storableEvent.PayloadJSON)

	case core.RequestingBookCopyFailedEventType:
		return unmarshalPayload[core.RequestingBookCopyFailed](storableEvent.PayloadJSON)

	case core.CancelingBookRequestFailedEventType:
		return unmarshalPayload[core.CancelingBookRequestFailed](storableEvent.PayloadJSON)

	case core.ApprovingBookRequestFailedEventType:
		return unmarshalPayload[core.ApprovingBookRequestFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(
		ErrMappingToDomainEventFailed,
		fmt.Errorf("%w: %s", ErrMappingToDomainEventUnknownEventType, storableEvent.EventType),
	)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}

type validatable interface {
	core.DomainEvent
	Validate() error
}

func unmarshalValidPayload[E validatable](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	if err := payload.Validate(); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
