package propertyencoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/propertyencoder"
)

func Test_Encoder_Encode(t *testing.T) {
	tests := []struct {
		name     string
		scope    lifecycle.EncodingScope
		field    string
		locale   string
		expected string
	}{
		{name: "system ignores locale", scope: lifecycle.ScopeSystem, field: "created", locale: "en", expected: "sys:created"},
		{name: "system without locale", scope: lifecycle.ScopeSystem, field: "changed", locale: "", expected: "sys:changed"},
		{name: "localized en", scope: lifecycle.ScopeSystemLocalized, field: "created", locale: "en", expected: "i18n:en-created"},
		{name: "localized de_at", scope: lifecycle.ScopeSystemLocalized, field: "changed", locale: "de_at", expected: "i18n:de_at-changed"},
		{name: "localized en-US", scope: lifecycle.ScopeSystemLocalized, field: "changed", locale: "en-US", expected: "i18n:en-US-changed"},
	}

	encoder := propertyencoder.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := encoder.Encode(tt.scope, tt.field, tt.locale)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func Test_Encoder_DistinctTriplesDoNotCollide(t *testing.T) {
	encoder := propertyencoder.New()
	seen := make(map[string]string)

	fields := []string{lifecycle.FieldCreated, lifecycle.FieldChanged, "published_at", "US"}
	locales := []string{"", "en", "de", "en-US", "en-US-changed", "de_at", "zh-Hant-TW", "sys:changed"}

	for _, scope := range []lifecycle.EncodingScope{lifecycle.ScopeSystem, lifecycle.ScopeSystemLocalized} {
		for _, field := range fields {
			scopeLocales := locales
			if scope == lifecycle.ScopeSystem {
				scopeLocales = []string{""}
			}

			for _, locale := range scopeLocales {
				key, err := encoder.Encode(scope, field, locale)
				require.NoError(t, err)

				triple := string(scope) + "|" + field + "|" + locale
				previous, duplicate := seen[key]
				assert.False(t, duplicate, "%s and %s both encode to %s", previous, triple, key)
				seen[key] = triple
			}
		}
	}
}

func Test_Encoder_RejectsFieldsContainingTheLocaleSeparator(t *testing.T) {
	encoder := propertyencoder.New()

	key, err := encoder.Encode(lifecycle.ScopeSystemLocalized, lifecycle.FieldChanged, "en-US")
	require.NoError(t, err)

	_, err = encoder.Encode(lifecycle.ScopeSystemLocalized, "US-changed", "en")
	assert.ErrorIs(t, err, propertyencoder.ErrInvalidField)

	_, err = encoder.Encode(lifecycle.ScopeSystem, "published-at", "")
	assert.ErrorIs(t, err, propertyencoder.ErrInvalidField)

	_, err = encoder.Encode(lifecycle.ScopeSystem, "", "")
	assert.ErrorIs(t, err, propertyencoder.ErrInvalidField)

	assert.Equal(t, "i18n:en-US-changed", key)
}

func Test_Encoder_UnknownScope(t *testing.T) {
	_, err := propertyencoder.New().Encode(lifecycle.EncodingScope("content"), "title", "en")

	assert.ErrorIs(t, err, lifecycle.ErrUnknownEncodingScope)
}

func Test_Encoder_Options(t *testing.T) {
	encoder, err := propertyencoder.NewWithOptions(
		propertyencoder.WithSystemPrefix("jcr"),
		propertyencoder.WithLocalizedPrefix("loc"),
	)
	require.NoError(t, err)

	key, err := encoder.Encode(lifecycle.ScopeSystem, "created", "")
	assert.NoError(t, err)
	assert.Equal(t, "jcr:created", key)

	key, err = encoder.Encode(lifecycle.ScopeSystemLocalized, "created", "en")
	assert.NoError(t, err)
	assert.Equal(t, "loc:en-created", key)

	_, err = propertyencoder.NewWithOptions(propertyencoder.WithSystemPrefix(""))
	assert.ErrorIs(t, err, propertyencoder.ErrEmptyPrefix)

	_, err = propertyencoder.NewWithOptions(propertyencoder.WithLocalizedPrefix("i18n:en"))
	assert.ErrorIs(t, err, propertyencoder.ErrInvalidPrefix)

	_, err = propertyencoder.NewWithOptions(propertyencoder.WithLocalizedPrefix("sys"))
	assert.ErrorIs(t, err, propertyencoder.ErrDuplicatePrefix)
}
