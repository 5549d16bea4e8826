package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/oteladapters"
)

func givenTracingCollector() (*oteladapters.TracingCollector, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return oteladapters.NewTracingCollector(provider.Tracer("lifecycle-test")), exporter
}

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	collector, exporter := givenTracingCollector()

	ctx, spanCtx := collector.StartSpan(context.Background(), "lifecycle.dispatch", map[string]string{
		"phase":         "persist",
		"handler_count": "2",
	})
	require.NotNil(t, spanCtx)
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())

	spanCtx.AddAttribute("handler", "timestamp.set_on_node_for_persist")
	collector.FinishSpan(spanCtx, "success", map[string]string{"duration_ms": "0.5"})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "lifecycle.dispatch", span.Name)
	assertSpanHasAttribute(t, span, "phase", "persist")
	assertSpanHasAttribute(t, span, "handler_count", "2")
	assertSpanHasAttribute(t, span, "handler", "timestamp.set_on_node_for_persist")
	assertSpanHasAttribute(t, span, "duration_ms", "0.5")
	assert.Equal(t, codes.Ok, span.Status.Code)
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	tests := []struct {
		status       string
		expectedCode codes.Code
	}{
		{status: "success", expectedCode: codes.Ok},
		{status: "error", expectedCode: codes.Error},
		{status: "canceled", expectedCode: codes.Error},
		{status: "partial", expectedCode: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			collector, exporter := givenTracingCollector()

			_, spanCtx := collector.StartSpan(context.Background(), "lifecycle.dispatch", nil)
			collector.FinishSpan(spanCtx, tt.status, nil)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedCode, spans[0].Status.Code)

			if tt.expectedCode == codes.Unset {
				assertSpanHasAttribute(t, spans[0], "status", tt.status)
			}
		})
	}
}

type foreignSpanContext struct{}

func (foreignSpanContext) SetStatus(string)            {}
func (foreignSpanContext) AddAttribute(string, string) {}

func Test_TracingCollector_IgnoresForeignSpanContexts(t *testing.T) {
	collector, exporter := givenTracingCollector()

	collector.FinishSpan(foreignSpanContext{}, "success", map[string]string{"k": "v"})

	assert.Empty(t, exporter.GetSpans())
}
