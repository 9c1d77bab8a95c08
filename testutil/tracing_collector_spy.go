package testutil

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
)

// SpanRecord is one captured span.
type SpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Finished        bool
	Status          string
	EndAttributes   map[string]string
}

type spanContextSpy struct {
	collector *TracingCollectorSpy
	index     int
}

func (c *spanContextSpy) SetStatus(status string) {
	c.collector.mu.Lock()
	defer c.collector.mu.Unlock()

	c.collector.spans[c.index].Status = status
}

func (c *spanContextSpy) AddAttribute(key, value string) {
	c.collector.mu.Lock()
	defer c.collector.mu.Unlock()

	c.collector.spans[c.index].EndAttributes[key] = value
}

type spanKey struct{}

// TracingCollectorSpy captures all spans. It is safe for concurrent use.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []SpanRecord
}

// NewTracingCollectorSpy creates an empty TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, SpanRecord{Name: name, StartAttributes: maps.Clone(attrs), EndAttributes: make(map[string]string)})
	span := &spanContextSpy{collector: s, index: len(s.spans) - 1}

	return context.WithValue(ctx, spanKey{}, span), span
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*spanContextSpy)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &s.spans[span.index]
	record.Finished = true
	record.Status = status
	maps.Copy(record.EndAttributes, attrs)
}

// Spans returns a copy of all captured spans in start order.
func (s *TracingCollectorSpy) Spans() []SpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]SpanRecord, len(s.spans))
	copy(spans, s.spans)

	return spans
}

// SpanStarted reports whether ctx carries a span started by this spy.
func SpanStarted(ctx context.Context) bool {
	_, ok := ctx.Value(spanKey{}).(*spanContextSpy)
	return ok
}
