package lifecycle

import (
	"context"
)

// Node is the store-side property bag backing one document.
//
// Implementations are owned by the property store. Errors are store failures and
// are propagated unchanged by subscribers.
type Node interface {
	HasProperty(ctx context.Context, key string) (bool, error)
	PropertyValueWithDefault(ctx context.Context, key string, defaultValue any) (any, error)
	SetProperty(ctx context.Context, key string, value any) error
}

// DocumentAccessor writes a value onto an in-memory document without the caller knowing its concrete type.
type DocumentAccessor interface {
	Set(field string, value any) error
}

// AccessorFunc adapts a plain function to the DocumentAccessor interface.
type AccessorFunc func(field string, value any) error

// Set calls f(field, value).
func (f AccessorFunc) Set(field string, value any) error {
	return f(field, value)
}

// PropertyEncoder turns a scope, a field name and a locale into a store-level property key.
//
// Distinct (scope, field, locale) triples must never produce the same key.
type PropertyEncoder interface {
	Encode(scope EncodingScope, field string, locale string) (string, error)
}

// LocaleInspector resolves the original locale of a document. An empty string means no locale.
type LocaleInspector interface {
	OriginalLocale(document any) string
}

// LocaleInspectorFunc adapts a plain function to the LocaleInspector interface.
type LocaleInspectorFunc func(document any) string

// OriginalLocale calls f(document).
func (f LocaleInspectorFunc) OriginalLocale(document any) string {
	return f(document)
}
