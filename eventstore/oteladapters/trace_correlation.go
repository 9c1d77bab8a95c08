package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	logAttrTraceID = "trace_id"
	logAttrSpanID  = "span_id"
)

// TraceCorrelationHandler adds trace_id and span_id to every record logged with a context
// that carries a valid span. Records without one pass through unchanged.
type TraceCorrelationHandler struct {
	next slog.Handler
}

// NewTraceCorrelationHandler wraps next.
func NewTraceCorrelationHandler(next slog.Handler) *TraceCorrelationHandler {
	return &TraceCorrelationHandler{next: next}
}

func (h *TraceCorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *TraceCorrelationHandler) Handle(ctx context.Context, record slog.Record) error {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		record = record.Clone()
		record.AddAttrs(
			slog.String(logAttrTraceID, spanCtx.TraceID().String()),
			slog.String(logAttrSpanID, spanCtx.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

func (h *TraceCorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceCorrelationHandler{next: h.next.WithAttrs(attrs)}
}

func (h *TraceCorrelationHandler) WithGroup(name string) slog.Handler {
	return &TraceCorrelationHandler{next: h.next.WithGroup(name)}
}
