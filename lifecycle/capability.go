package lifecycle

import (
	"time"
)

// EncodingScope selects the namespace a property key is encoded into.
type EncodingScope string

const (
	// ScopeSystem is used for properties that are shared by all locales of a document.
	ScopeSystem EncodingScope = "system"

	// ScopeSystemLocalized is used for properties that exist once per locale.
	ScopeSystemLocalized EncodingScope = "system-localized"
)

// IsLocalized reports whether properties in this scope need a locale to be encoded.
func (s EncodingScope) IsLocalized() bool {
	return s == ScopeSystemLocalized
}

// Valid reports whether s is one of the known scopes.
func (s EncodingScope) Valid() bool {
	return s == ScopeSystem || s == ScopeSystemLocalized
}

// LocalizedTimestampBehavior is implemented by documents that track when they were created and last changed.
// A nil return value means the document does not hold that timestamp yet.
//
// Documents implementing only this behavior keep one created/changed pair per locale.
type LocalizedTimestampBehavior interface {
	Created() *time.Time
	Changed() *time.Time
}

// TimestampBehavior is implemented by documents whose created/changed pair is shared by all locales.
//
// The GlobalTimestamps method is a marker and carries no behavior.
type TimestampBehavior interface {
	LocalizedTimestampBehavior
	GlobalTimestamps()
}

// TimestampCapability is the result of querying a document for its timestamp behaviors.
type TimestampCapability struct {
	behavior LocalizedTimestampBehavior
	scope    EncodingScope
}

// QueryTimestampCapability checks which timestamp behavior the document declares.
//
// It returns false if the document does not implement LocalizedTimestampBehavior.
// The result is computed from the document alone and must not be cached across documents.
func QueryTimestampCapability(document any) (TimestampCapability, bool) {
	behavior, ok := document.(LocalizedTimestampBehavior)
	if !ok {
		return TimestampCapability{}, false
	}

	scope := ScopeSystemLocalized
	if _, global := document.(TimestampBehavior); global {
		scope = ScopeSystem
	}

	return TimestampCapability{behavior: behavior, scope: scope}, true
}

// Scope returns the encoding scope the document's timestamps are stored in.
func (c TimestampCapability) Scope() EncodingScope {
	return c.scope
}

// Behavior returns the document viewed through its timestamp behavior.
func (c TimestampCapability) Behavior() LocalizedTimestampBehavior {
	return c.behavior
}
