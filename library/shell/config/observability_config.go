package config

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/library-latefees-go/eventstore/oteladapters"
)

const (
	envOTELEndpoint = "LATEFEES_OTEL_ENDPOINT"

	serviceName          = "latefees"
	instrumentationName  = "github.com/AntonStoeckl/library-latefees-go"
	metricExportInterval = 5 * time.Second
)

// ErrEmptyObservabilityEndpoint is returned when the OTLP endpoint is empty.
var ErrEmptyObservabilityEndpoint = errors.New("observability endpoint must not be empty")

// ObservabilityEndpoint returns the OTLP gRPC endpoint (host:port) from LATEFEES_OTEL_ENDPOINT.
// Metrics and tracing are switched off when it is not set.
func ObservabilityEndpoint() (string, bool) {
	endpoint := strings.TrimSpace(os.Getenv(envOTELEndpoint))
	return endpoint, endpoint != ""
}

// ObservabilityProviders holds the OpenTelemetry providers and the collectors built on them.
type ObservabilityProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Resource       *resource.Resource
}

// NewObservabilityProviders exports traces and metrics via OTLP gRPC to endpoint and
// registers the providers globally. The exporters connect lazily.
func NewObservabilityProviders(ctx context.Context, endpoint string, serviceVersion string) (*ObservabilityProviders, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrEmptyObservabilityEndpoint
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpoint(endpoint), otlpmetricgrpc.WithInsecure())
	if err != nil {
		return nil, errors.Join(err, traceExporter.Shutdown(ctx))
	}

	providers, err := NewObservabilityProvidersWith(
		ctx,
		serviceVersion,
		sdktrace.WithBatcher(traceExporter),
		sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval)),
	)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(providers.TracerProvider)
	otel.SetMeterProvider(providers.MeterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return providers, nil
}

// NewObservabilityProvidersWith builds the providers on the given span processor and metric reader.
// Tests pass in-memory ones here.
func NewObservabilityProvidersWith(
	ctx context.Context,
	serviceVersion string,
	spanProcessing sdktrace.TracerProviderOption,
	metricReader sdkmetric.Reader,
) (*ObservabilityProviders, error) {

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	return &ObservabilityProviders{
		TracerProvider: sdktrace.NewTracerProvider(spanProcessing, sdktrace.WithResource(res)),
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader), sdkmetric.WithResource(res)),
		Resource:       res,
	}, nil
}

// MetricsCollector returns a collector for the event store and the handler wrappers.
func (p *ObservabilityProviders) MetricsCollector() *oteladapters.MetricsCollector {
	return oteladapters.NewMetricsCollector(p.MeterProvider.Meter(instrumentationName))
}

// TracingCollector returns a collector for the event store and the handler wrappers.
func (p *ObservabilityProviders) TracingCollector() *oteladapters.TracingCollector {
	return oteladapters.NewTracingCollector(p.TracerProvider.Tracer(instrumentationName))
}

// Shutdown flushes and stops both providers.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	return errors.Join(p.TracerProvider.Shutdown(ctx), p.MeterProvider.Shutdown(ctx))
}
