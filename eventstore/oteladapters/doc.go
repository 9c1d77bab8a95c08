// Package oteladapters implements the dependency-free observability interfaces of the
// eventstore package with OpenTelemetry.
//
//	collector := oteladapters.NewMetricsCollector(meterProvider.Meter("latefees"))
//	tracing := oteladapters.NewTracingCollector(tracerProvider.Tracer("latefees"))
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool,
//		postgresengine.WithMetrics(collector),
//		postgresengine.WithTracing(tracing),
//	)
//
// TraceCorrelationHandler adds trace and span IDs to slog records, so logs and traces can be joined.
package oteladapters
