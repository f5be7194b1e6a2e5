package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"folio/internal/controller"
)

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, exp)
	assert.False(t, exp.Enabled())
	assert.Nil(t, exp.TransitionObserver())
	assert.NotNil(t, exp.Tracer())
	assert.NoError(t, exp.Shutdown(context.Background()))
}

func TestExporter_TransitionObserverRecordsSpans(t *testing.T) {
	mem := tracetest.NewInMemoryExporter()
	exp := newExporter(sdktrace.NewTracerProvider(sdktrace.WithSyncer(mem)))

	nav := controller.NewNavigationController(nil, nil, nil)
	nav.SetObserver(exp.TransitionObserver())
	nav.Toggle()
	nav.Close()

	spans := mem.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "ui.toggle", spans[0].Name)
	assert.Equal(t, "ui.close", spans[1].Name)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "navigation", attrs["folio.controller"])
	assert.Equal(t, "closed", attrs["folio.from"])
	assert.Equal(t, "open", attrs["folio.to"])

	require.NoError(t, exp.Shutdown(context.Background()))
}
