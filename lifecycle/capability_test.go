package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
	"github.com/AntonStoeckl/document-lifecycle-go/testutil/lifecycle/fixtures"
)

func Test_QueryTimestampCapability(t *testing.T) {
	tests := []struct {
		name          string
		document      any
		expectedOK    bool
		expectedScope lifecycle.EncodingScope
	}{
		{
			name:          "localized only document resolves to system-localized",
			document:      fixtures.BuildLocalizedPage("home", "en"),
			expectedOK:    true,
			expectedScope: lifecycle.ScopeSystemLocalized,
		},
		{
			name:          "global document resolves to system",
			document:      fixtures.BuildSnippet("footer"),
			expectedOK:    true,
			expectedScope: lifecycle.ScopeSystem,
		},
		{
			name:       "document without timestamp behavior is not supported",
			document:   fixtures.BuildMedia("logo.png"),
			expectedOK: false,
		},
		{
			name:       "nil document is not supported",
			document:   nil,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capability, ok := lifecycle.QueryTimestampCapability(tt.document)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedScope, capability.Scope())
			if ok {
				assert.NotNil(t, capability.Behavior())
			}
		})
	}
}

func Test_QueryTimestampCapability_IsComputedPerDocument(t *testing.T) {
	global, _ := lifecycle.QueryTimestampCapability(fixtures.BuildSnippet("footer"))
	localized, _ := lifecycle.QueryTimestampCapability(fixtures.BuildLocalizedPage("home", "de"))

	assert.Equal(t, lifecycle.ScopeSystem, global.Scope())
	assert.Equal(t, lifecycle.ScopeSystemLocalized, localized.Scope())
}

func Test_EncodingScope(t *testing.T) {
	assert.True(t, lifecycle.ScopeSystem.Valid())
	assert.True(t, lifecycle.ScopeSystemLocalized.Valid())
	assert.False(t, lifecycle.EncodingScope("content").Valid())

	assert.False(t, lifecycle.ScopeSystem.IsLocalized())
	assert.True(t, lifecycle.ScopeSystemLocalized.IsLocalized())
}
