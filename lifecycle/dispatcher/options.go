package dispatcher

import (
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// Option defines a functional option for configuring Dispatcher.
type Option func(*Dispatcher) error

// WithLogger sets the logger for the Dispatcher.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: every handler invocation with its duration (development use)
// Info level: completed dispatches with handler count and duration (production-safe)
// Error level: handler failures that abort a dispatch.
func WithLogger(logger lifecycle.Logger) Option {
	return func(d *Dispatcher) error {
		d.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Dispatcher.
// The collector will receive dispatch and handler durations, handler counts, and handler errors.
func WithMetrics(collector lifecycle.MetricsCollector) Option {
	return func(d *Dispatcher) error {
		d.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Dispatcher.
// One span is created per dispatch, carrying the phase, the handler count, and the failing handler if any.
func WithTracing(collector lifecycle.TracingCollector) Option {
	return func(d *Dispatcher) error {
		d.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Dispatcher.
// The contextual logger receives the same messages as the Logger, with the dispatch context attached
// so trace and span IDs can be correlated.
func WithContextualLogger(logger lifecycle.ContextualLogger) Option {
	return func(d *Dispatcher) error {
		d.contextualLogger = logger
		return nil
	}
}
