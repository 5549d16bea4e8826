// Package lifecycle provides the core contracts of the document lifecycle event subsystem.
//
// A dispatcher fires typed lifecycle events (hydrate, persist, publish, restore) against a mutable
// document and the node that backs it in a hierarchical property store. Subscribers react to a
// subset of these events depending on which optional behaviors a document declares.
//
// This package defines the types shared by all implementations:
//   - Capability markers: TimestampBehavior, LocalizedTimestampBehavior
//   - Collaborator ports: Node, DocumentAccessor, PropertyEncoder, LocaleInspector
//   - Event and Phase: the immutable per-dispatch context
//   - InstantSource: where a persisted timestamp comes from
//   - Observability interfaces: Logger, ContextualLogger, MetricsCollector, TracingCollector
//   - ConstraintViolationError: a data-carrying error for REST-style reporting
//
// Common usage pattern:
//
//	d, _ := dispatcher.New(dispatcher.WithLogger(logger))
//	_ = d.AddSubscriber(timestamp.New(propertyencoder.New(), inspector))
//
//	event, err := lifecycle.BuildPersistEvent(document, node, accessor)
//	if err != nil {
//		// handle error
//	}
//
//	err = d.Dispatch(ctx, event)
package lifecycle
