// Package dispatcher provides a synchronous, priority-ordered lifecycle event dispatcher.
//
// Handlers are registered per lifecycle.Phase with a name and a priority. Handlers with a higher
// priority run first; handlers with equal priority run in registration order. The order is
// established at registration time, so dispatching never sorts.
//
// Dispatch runs the handlers of the event's phase one after another on the calling goroutine.
// The first handler error stops the dispatch and is returned unchanged.
//
// Key features:
//   - Subscriber registration (lifecycle.Subscriber) and single handler registration
//   - Optional logging, contextual logging, metrics and tracing through functional options
//   - Safe for concurrent registration and dispatching
//
// Usage examples:
//
//	// Basic usage
//	d, _ := dispatcher.New()
//	_ = d.AddSubscriber(timestampSubscriber)
//
//	// With observability
//	d, _ := dispatcher.New(
//		dispatcher.WithLogger(slog.Default()),
//		dispatcher.WithMetrics(metricsCollector),
//		dispatcher.WithTracing(tracingCollector),
//	)
//
//	err := d.Dispatch(ctx, event)
package dispatcher
