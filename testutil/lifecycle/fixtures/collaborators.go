package fixtures

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// AccessorCall is one recorded DocumentAccessor.Set call.
type AccessorCall struct {
	Field string
	Value any
}

// AccessorSpy records every Set call and forwards it to an optional inner accessor.
type AccessorSpy struct {
	inner lifecycle.DocumentAccessor
	calls []AccessorCall
	mu    sync.Mutex
}

// NewAccessorSpy creates an AccessorSpy. Inner may be nil.
func NewAccessorSpy(inner lifecycle.DocumentAccessor) *AccessorSpy {
	return &AccessorSpy{inner: inner}
}

// Set implements lifecycle.DocumentAccessor.
func (s *AccessorSpy) Set(field string, value any) error {
	s.mu.Lock()
	s.calls = append(s.calls, AccessorCall{Field: field, Value: value})
	s.mu.Unlock()

	if s.inner == nil {
		return nil
	}

	return s.inner.Set(field, value)
}

// Calls returns a copy of the recorded calls.
func (s *AccessorSpy) Calls() []AccessorCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]AccessorCall, len(s.calls))
	copy(calls, s.calls)

	return calls
}

// FailingNode is a lifecycle.Node whose operations fail with the configured errors.
// A nil error makes the operation succeed against an empty node.
type FailingNode struct {
	HasErr error
	GetErr error
	SetErr error
}

// HasProperty implements lifecycle.Node.
func (n FailingNode) HasProperty(_ context.Context, _ string) (bool, error) {
	return false, n.HasErr
}

// PropertyValueWithDefault implements lifecycle.Node.
func (n FailingNode) PropertyValueWithDefault(_ context.Context, _ string, defaultValue any) (any, error) {
	if n.GetErr != nil {
		return nil, n.GetErr
	}

	return defaultValue, nil
}

// SetProperty implements lifecycle.Node.
func (n FailingNode) SetProperty(_ context.Context, _ string, _ any) error {
	return n.SetErr
}

// StaticLocaleInspector returns a lifecycle.LocaleInspector that always answers locale.
func StaticLocaleInspector(locale string) lifecycle.LocaleInspector {
	return lifecycle.LocaleInspectorFunc(func(_ any) string {
		return locale
	})
}

// PageLocaleInspector answers the Locale of LocalizedPage documents and "" for everything else.
func PageLocaleInspector() lifecycle.LocaleInspector {
	return lifecycle.LocaleInspectorFunc(func(document any) string {
		if page, ok := document.(*LocalizedPage); ok {
			return page.Locale
		}

		return ""
	})
}
