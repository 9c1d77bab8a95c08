package eventstore

import (
	"context"
	"time"
)

// MetricsCollector receives event store and handler metrics. It has no dependencies,
// eventstore/oteladapters implements it on top of OpenTelemetry.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector is an optional extension of MetricsCollector.
// When a collector implements it, the context is passed on for exemplars and trace correlation.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext is an active tracing span.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector starts and finishes tracing spans.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// RecordDuration uses the context-aware method if the collector has it. A nil collector is a no-op.
func RecordDuration(ctx context.Context, collector MetricsCollector, metric string, duration time.Duration, labels map[string]string) {
	switch c := collector.(type) {
	case nil:
	case ContextualMetricsCollector:
		c.RecordDurationContext(ctx, metric, duration, labels)
	default:
		c.RecordDuration(metric, duration, labels)
	}
}

// IncrementCounter uses the context-aware method if the collector has it. A nil collector is a no-op.
func IncrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	switch c := collector.(type) {
	case nil:
	case ContextualMetricsCollector:
		c.IncrementCounterContext(ctx, metric, labels)
	default:
		c.IncrementCounter(metric, labels)
	}
}

// RecordValue uses the context-aware method if the collector has it. A nil collector is a no-op.
func RecordValue(ctx context.Context, collector MetricsCollector, metric string, value float64, labels map[string]string) {
	switch c := collector.(type) {
	case nil:
	case ContextualMetricsCollector:
		c.RecordValueContext(ctx, metric, value, labels)
	default:
		c.RecordValue(metric, value, labels)
	}
}
