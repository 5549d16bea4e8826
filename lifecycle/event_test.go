package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/memorynode"
	"github.com/AntonStoeckl/document-lifecycle-go/testutil/lifecycle/fixtures"
)

func Test_BuildEvent_WithAccessor(t *testing.T) {
	page := fixtures.BuildLocalizedPage("home", "en")
	node := memorynode.New()
	accessor := page.Accessor()

	tests := []struct {
		name          string
		build         func() (lifecycle.Event, error)
		expectedPhase lifecycle.Phase
	}{
		{
			name:          "hydrate",
			build:         func() (lifecycle.Event, error) { return lifecycle.BuildHydrateEvent(page, node, accessor) },
			expectedPhase: lifecycle.PhaseHydrate,
		},
		{
			name:          "persist",
			build:         func() (lifecycle.Event, error) { return lifecycle.BuildPersistEvent(page, node, accessor) },
			expectedPhase: lifecycle.PhasePersist,
		},
		{
			name:          "publish",
			build:         func() (lifecycle.Event, error) { return lifecycle.BuildPublishEvent(page, node, accessor) },
			expectedPhase: lifecycle.PhasePublish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := tt.build()

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPhase, event.Phase())
			assert.Same(t, page, event.Document())
			assert.Same(t, node, event.Node())
			assert.NotNil(t, event.Accessor())
		})
	}
}

func Test_BuildRestoreEvent_HasNoAccessor(t *testing.T) {
	page := fixtures.BuildLocalizedPage("home", "en")

	event, err := lifecycle.BuildRestoreEvent(page, memorynode.New())

	assert.NoError(t, err)
	assert.Equal(t, lifecycle.PhaseRestore, event.Phase())
	assert.Nil(t, event.Accessor())
}

func Test_BuildEvent_ErrorCases(t *testing.T) {
	page := fixtures.BuildLocalizedPage("home", "en")
	node := memorynode.New()

	tests := []struct {
		name        string
		build       func() (lifecycle.Event, error)
		expectedErr error
	}{
		{
			name:        "nil document",
			build:       func() (lifecycle.Event, error) { return lifecycle.BuildPersistEvent(nil, node, page.Accessor()) },
			expectedErr: lifecycle.ErrNilDocument,
		},
		{
			name:        "nil node",
			build:       func() (lifecycle.Event, error) { return lifecycle.BuildHydrateEvent(page, nil, page.Accessor()) },
			expectedErr: lifecycle.ErrNilNode,
		},
		{
			name:        "nil accessor",
			build:       func() (lifecycle.Event, error) { return lifecycle.BuildPublishEvent(page, node, nil) },
			expectedErr: lifecycle.ErrNilAccessor,
		},
		{
			name:        "restore with nil node",
			build:       func() (lifecycle.Event, error) { return lifecycle.BuildRestoreEvent(page, nil) },
			expectedErr: lifecycle.ErrNilNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_Phase_Valid(t *testing.T) {
	for _, phase := range lifecycle.Phases() {
		assert.True(t, phase.Valid(), string(phase))
	}

	assert.False(t, lifecycle.Phase("remove").Valid())
}
