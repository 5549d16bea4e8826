package oteladapters_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/dispatcher"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/memorynode"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/oteladapters"
)

type plainDocument struct{}

func Test_Dispatcher_WithOpenTelemetry(t *testing.T) {
	// setup
	spanExporter := tracetest.NewInMemoryExporter()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanExporter))
	metricReader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader))
	var logOutput bytes.Buffer

	d, err := dispatcher.New(
		dispatcher.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("lifecycle-test"))),
		dispatcher.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("lifecycle-test"))),
		dispatcher.WithContextualLogger(oteladapters.NewSlogBridgeLoggerWithHandler(
			slog.NewJSONHandler(&logOutput, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)),
	)
	require.NoError(t, err)

	handlerErr := errors.New("index unavailable")
	require.NoError(t, d.Subscribe(lifecycle.PhaseRestore, "search.reindex", lifecycle.DefaultPriority,
		func(context.Context, lifecycle.Event) error { return handlerErr },
	))

	event, err := lifecycle.BuildRestoreEvent(plainDocument{}, memorynode.New())
	require.NoError(t, err)

	// act
	dispatchErr := d.Dispatch(context.Background(), event)

	// assert
	assert.Same(t, handlerErr, dispatchErr)

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "lifecycle.dispatch", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "phase", "restore")
	assertSpanHasAttribute(t, spans[0], "failed_handler", "search.reindex")

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, metricReader.Collect(context.Background(), &resourceMetrics))
	errorsTotal, ok := findMetric(t, resourceMetrics, "lifecycle_handler_errors_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, errorsTotal.DataPoints, 1)
	assert.Equal(t, int64(1), errorsTotal.DataPoints[0].Value)

	assert.Contains(t, logOutput.String(), "lifecycle handler failed")
}
