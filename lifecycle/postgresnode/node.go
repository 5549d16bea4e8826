package postgresnode

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// Node is a lifecycle.Node whose properties live in a NodeStore table.
type Node struct {
	store NodeStore
	id    uuid.UUID
}

// ID returns the identity of the node.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// HasProperty reports whether a row exists for key.
func (n *Node) HasProperty(ctx context.Context, key string) (bool, error) {
	return n.store.hasProperty(ctx, n.id, key)
}

// PropertyValueWithDefault returns the decoded value stored for key, or defaultValue if there is no row.
func (n *Node) PropertyValueWithDefault(ctx context.Context, key string, defaultValue any) (any, error) {
	value, found, err := n.store.propertyValue(ctx, n.id, key)
	if err != nil {
		return nil, err
	}

	if !found {
		return defaultValue, nil
	}

	return value, nil
}

// SetProperty inserts or replaces the value stored for key.
func (n *Node) SetProperty(ctx context.Context, key string, value any) error {
	return n.store.setProperty(ctx, n.id, key, value)
}

// Properties returns all properties of the node.
func (n *Node) Properties(ctx context.Context) (map[string]any, error) {
	return n.store.Properties(ctx, n.id)
}

var _ lifecycle.Node = (*Node)(nil)
