package memengine

import (
	"context"
	"errors"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

const (
	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// ErrDecodingPayloadFailed is returned by Append when a payload is valid JSON but not a JSON object.
var ErrDecodingPayloadFailed = errors.New("decoding the payload into a json object failed")

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
func WithLogger(logger Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

type storedEvent struct {
	event          eventstore.StorableEvent
	sequenceNumber eventstore.MaxSequenceNumberUint
	payload        map[string]any
}

// EventStore keeps all events in one slice, ordered by sequence number. It is safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	events []storedEvent
	logger Logger
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns the matching events in sequence order and the highest sequence number among them.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return eventstore.StorableEvents{}, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, stored := range es.events {
		if !matchesFilter(stored, filter) {
			continue
		}

		eventStream = append(eventStream, copyEvent(stored.event))
		maxSequenceNumber = stored.sequenceNumber
	}

	if es.logger != nil {
		es.logger.Info(logMsgQueryCompleted, logAttrEventCount, len(eventStream))
	}

	return eventStream, maxSequenceNumber, nil
}

// Append appends all events atomically, or none if the stream selected by the filter has moved past expectedMaxSequenceNumber.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	decoded := make([]map[string]any, 0, len(allEvents))
	for _, e := range allEvents {
		payload := make(map[string]any)
		if err := jsoniter.ConfigFastest.Unmarshal(e.PayloadJSON, &payload); err != nil {
			return errors.Join(eventstore.ErrAppendingEventFailed, ErrDecodingPayloadFailed, err)
		}

		decoded = append(decoded, payload)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	actualMaxSequenceNumber := eventstore.MaxSequenceNumberUint(0)
	for _, stored := range es.events {
		if matchesFilter(stored, filter) {
			actualMaxSequenceNumber = stored.sequenceNumber
		}
	}

	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		if es.logger != nil {
			es.logger.Info(
				logMsgConcurrencyConflict,
				logAttrExpectedSequence, expectedMaxSequenceNumber,
				logAttrActualSequence, actualMaxSequenceNumber,
			)
		}

		return eventstore.ErrConcurrencyConflict
	}

	nextSequenceNumber := eventstore.MaxSequenceNumberUint(len(es.events))
	for i, e := range allEvents {
		nextSequenceNumber++
		es.events = append(es.events, storedEvent{
			event:          copyEvent(e),
			sequenceNumber: nextSequenceNumber,
			payload:        decoded[i],
		})
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(allEvents))
	}

	return nil
}

func matchesFilter(stored storedEvent, filter eventstore.Filter) bool {
	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(stored, item) {
			return true
		}
	}

	return false
}

func matchesItem(stored storedEvent, item eventstore.FilterItem) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), stored.event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	matches := func(predicate eventstore.FilterPredicate) bool {
		val, ok := stored.payload[predicate.Key()].(string)
		return ok && val == predicate.Val()
	}

	if item.AllPredicatesMustMatch() {
		for _, predicate := range item.Predicates() {
			if !matches(predicate) {
				return false
			}
		}

		return true
	}

	return slices.ContainsFunc(item.Predicates(), matches)
}

func copyEvent(event eventstore.StorableEvent) eventstore.StorableEvent {
	event.PayloadJSON = slices.Clone(event.PayloadJSON)
	event.MetadataJSON = slices.Clone(event.MetadataJSON)

	return event
}
