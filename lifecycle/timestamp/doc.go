// Package timestamp provides the lifecycle subscriber that maintains created/changed timestamps.
//
// The Subscriber acts on documents implementing lifecycle.LocalizedTimestampBehavior and ignores
// all other documents. Documents that additionally implement lifecycle.TimestampBehavior store a
// single pair in the system scope; all others store one pair per locale in the system-localized scope.
//
// Registered handlers:
//
//	hydrate  (default priority)  node -> document
//	persist  (default priority)  document -> node, changed = now
//	publish  (default priority)  document -> node, changed = document's own value
//	restore  (priority -32)      node changed = now, document untouched
//
// Persist, publish and restore skip localized documents without a locale. Publish leaves changed
// alone when the document has no changed value; hydrate reads with the empty locale and yields nil.
//
// The created property is written at most once per node property; changed is overwritten on every
// persist and publish.
//
// Usage:
//
//	subscriber, _ := timestamp.New(propertyencoder.New(), inspector, timestamp.WithLogger(logger))
//	d, _ := dispatcher.New()
//	_ = d.AddSubscriber(subscriber)
package timestamp
