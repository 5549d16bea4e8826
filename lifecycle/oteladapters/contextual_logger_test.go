package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/oteladapters"
)

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	assert.NotNil(t, oteladapters.NewSlogBridgeLogger("lifecycle-test"))
}

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	ctx := context.Background()

	logger.DebugContext(ctx, "debug message", "phase", "persist")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")
	logger.Info("plain info message")

	output := buf.String()
	assert.Contains(t, output, `"msg":"debug message"`)
	assert.Contains(t, output, `"phase":"persist"`)
	assert.Contains(t, output, `"level":"INFO","msg":"info message"`)
	assert.Contains(t, output, `"level":"WARN","msg":"warn message"`)
	assert.Contains(t, output, `"level":"ERROR","msg":"error message"`)
	assert.Contains(t, output, `"msg":"plain info message"`)
}

func Test_SlogBridgeLogger_RespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger.Debug("hidden")
	logger.DebugContext(context.Background(), "hidden too")

	assert.Empty(t, buf.String())
}

func Test_OTelLogger_EmitsRecords(t *testing.T) {
	// setup
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	// act
	logger.InfoContext(context.Background(), "lifecycle operation: dispatch completed",
		"phase", "persist",
		"handler_count", 2,
		"duration_ms", 1.5,
		"success", true,
		"elapsed", 3*time.Millisecond,
		"dangling",
	)
	logger.ErrorContext(context.Background(), "lifecycle handler failed", "error", "boom")

	// assert
	require.Len(t, recorder.records, 2)

	info := recorder.records[0]
	assert.Equal(t, log.SeverityInfo, info.Severity())
	assert.Equal(t, "lifecycle operation: dispatch completed", info.Body().AsString())
	assert.False(t, info.Timestamp().IsZero())

	attrs := recordAttributes(info)
	assert.Len(t, attrs, 5)
	assert.Equal(t, "persist", attrs["phase"].AsString())
	assert.Equal(t, int64(2), attrs["handler_count"].AsInt64())
	assert.InDelta(t, 1.5, attrs["duration_ms"].AsFloat64(), 0.0001)
	assert.True(t, attrs["success"].AsBool())
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), attrs["elapsed"].AsInt64())

	failure := recorder.records[1]
	assert.Equal(t, log.SeverityError, failure.Severity())
	assert.Equal(t, "boom", recordAttributes(failure)["error"].AsString())
}

func Test_OTelLogger_Severities(t *testing.T) {
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)
	ctx := context.Background()

	logger.DebugContext(ctx, "d")
	logger.InfoContext(ctx, "i")
	logger.WarnContext(ctx, "w")
	logger.ErrorContext(ctx, "e")

	require.Len(t, recorder.records, 4)
	assert.Equal(t, log.SeverityDebug, recorder.records[0].Severity())
	assert.Equal(t, log.SeverityInfo, recorder.records[1].Severity())
	assert.Equal(t, log.SeverityWarn, recorder.records[2].Severity())
	assert.Equal(t, log.SeverityError, recorder.records[3].Severity())
}
