// Package oteladapters provides OpenTelemetry implementations of the lifecycle observability interfaces.
//
// The lifecycle packages only define small, dependency-free interfaces (lifecycle.Logger,
// lifecycle.ContextualLogger, lifecycle.MetricsCollector, lifecycle.TracingCollector). This
// module plugs them into OpenTelemetry:
//
//   - SlogBridgeLogger: slog based logger, optionally through the otelslog bridge for trace correlation
//   - OTelLogger: ContextualLogger on top of the OpenTelemetry log API
//   - MetricsCollector: histograms, counters and gauges from an OpenTelemetry meter
//   - TracingCollector: spans from an OpenTelemetry tracer
//
// Example:
//
//	d, err := dispatcher.New(
//	    dispatcher.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("cms"))),
//	    dispatcher.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("cms"))),
//	    dispatcher.WithContextualLogger(oteladapters.NewSlogBridgeLogger("cms")),
//	)
//
// It is a separate Go module so the core packages do not depend on OpenTelemetry.
package oteladapters
