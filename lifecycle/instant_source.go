package lifecycle

import (
	"time"
)

// InstantSource decides where a timestamp written during persist comes from.
//
// Use UseSuppliedInstant when the caller knows the instant (e.g. "now" during persist),
// and UseDocumentValue when the document's own value should be written (e.g. during publish).
type InstantSource struct {
	instant  time.Time
	supplied bool
}

// UseSuppliedInstant returns an InstantSource that always yields t.
func UseSuppliedInstant(t time.Time) InstantSource {
	return InstantSource{instant: t, supplied: true}
}

// UseDocumentValue returns an InstantSource that defers to the document's own value.
func UseDocumentValue() InstantSource {
	return InstantSource{}
}

// Instant returns the supplied instant and true, or the zero time and false for UseDocumentValue.
func (s InstantSource) Instant() (time.Time, bool) {
	return s.instant, s.supplied
}
