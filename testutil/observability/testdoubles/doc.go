// Package testdoubles provides test doubles (spies) for the lifecycle observability interfaces.
//
// It contains spy implementations for:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans and their attributes
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: a slog.Handler capturing records, so slog.New(spy) satisfies lifecycle.Logger
//
// These test doubles enable testing of observability instrumentation without telemetry backends.
package testdoubles
