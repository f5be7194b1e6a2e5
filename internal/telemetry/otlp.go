// Package telemetry exports OpenTelemetry traces for HTTP requests and UI
// state transitions. It is disabled unless OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"folio/internal/controller"
)

const instrumentationName = "folio"

// Exporter owns the tracer provider. A nil *Exporter is valid and hands out
// a no-op tracer.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "false" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "folio"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

func newExporter(provider *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Tracer returns the exporter's tracer, or a no-op tracer when disabled.
func (e *Exporter) Tracer() oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return e.tracer
}

// Enabled reports whether spans are actually exported.
func (e *Exporter) Enabled() bool {
	return e != nil
}

// TransitionObserver records each controller transition as a short span.
// It returns nil when disabled so callers can pass it straight to MultiObserver.
func (e *Exporter) TransitionObserver() controller.TransitionObserver {
	if e == nil {
		return nil
	}
	return func(t controller.Transition) {
		_, span := e.tracer.Start(context.Background(), "ui."+t.Event)
		span.SetAttributes(
			attribute.String("folio.controller", t.Controller),
			attribute.String("folio.from", t.From),
			attribute.String("folio.to", t.To),
			attribute.Bool("folio.changed", t.Changed()),
		)
		span.End()
	}
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
