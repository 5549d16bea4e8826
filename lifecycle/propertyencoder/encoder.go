// Package propertyencoder provides the default lifecycle.PropertyEncoder.
//
// Keys are built from a namespace prefix per scope, the locale (for localized scopes) and the field name:
//
//	system:            sys:<field>
//	system-localized:  i18n:<locale>-<field>
//
// Locales may contain any character, including the "-" of BCP 47 tags such as "en-US".
// Field names must be non-empty and must not contain "-", and prefixes must not contain ":".
// The namespace then ends at the first ":" and the field starts after the last "-",
// so distinct (scope, field, locale) triples never share a key.
package propertyencoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

const (
	defaultSystemPrefix    = "sys"
	defaultLocalizedPrefix = "i18n"
	namespaceSeparator     = ":"
	localeSeparator        = "-"
)

var ErrEmptyPrefix = errors.New("empty namespace prefix supplied")
var ErrInvalidPrefix = errors.New("namespace prefix contains the namespace separator")
var ErrDuplicatePrefix = errors.New("system and localized namespace prefixes must differ")
var ErrInvalidField = errors.New("field name is empty or contains the locale separator")

// Encoder is the default lifecycle.PropertyEncoder.
type Encoder struct {
	systemPrefix    string
	localizedPrefix string
}

// Option defines a functional option for configuring Encoder.
type Option func(*Encoder) error

// WithSystemPrefix sets the namespace prefix for lifecycle.ScopeSystem keys.
func WithSystemPrefix(prefix string) Option {
	return func(e *Encoder) error {
		if err := validatePrefix(prefix); err != nil {
			return err
		}

		e.systemPrefix = prefix

		return nil
	}
}

// WithLocalizedPrefix sets the namespace prefix for lifecycle.ScopeSystemLocalized keys.
func WithLocalizedPrefix(prefix string) Option {
	return func(e *Encoder) error {
		if err := validatePrefix(prefix); err != nil {
			return err
		}

		e.localizedPrefix = prefix

		return nil
	}
}

// New creates an Encoder with the default prefixes.
func New() Encoder {
	return Encoder{
		systemPrefix:    defaultSystemPrefix,
		localizedPrefix: defaultLocalizedPrefix,
	}
}

// NewWithOptions creates an Encoder with optional configuration.
func NewWithOptions(options ...Option) (Encoder, error) {
	e := New()

	for _, option := range options {
		if err := option(&e); err != nil {
			return Encoder{}, err
		}
	}

	if e.systemPrefix == e.localizedPrefix {
		return Encoder{}, ErrDuplicatePrefix
	}

	return e, nil
}

// Encode returns the property key for field in the given scope and locale.
// The locale is ignored for lifecycle.ScopeSystem.
func (e Encoder) Encode(scope lifecycle.EncodingScope, field string, locale string) (string, error) {
	if field == "" || strings.Contains(field, localeSeparator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	switch scope {
	case lifecycle.ScopeSystem:
		return e.systemPrefix + namespaceSeparator + field, nil

	case lifecycle.ScopeSystemLocalized:
		return e.localizedPrefix + namespaceSeparator + locale + localeSeparator + field, nil

	default:
		return "", fmt.Errorf("%w: %q", lifecycle.ErrUnknownEncodingScope, scope)
	}
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return ErrEmptyPrefix
	}

	if strings.Contains(prefix, namespaceSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	return nil
}

var _ lifecycle.PropertyEncoder = Encoder{}
