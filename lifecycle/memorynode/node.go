// Package memorynode provides an in-memory implementation of lifecycle.Node.
//
// It is safe for concurrent use and is meant for tests and in-process document handling
// where no persistent property store is involved.
package memorynode

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// Node is a map-backed property bag.
type Node struct {
	properties map[string]any
	mu         sync.RWMutex
}

// New creates an empty Node.
func New() *Node {
	return &Node{properties: make(map[string]any)}
}

// NewWithProperties creates a Node holding a copy of properties.
func NewWithProperties(properties map[string]any) *Node {
	n := New()
	maps.Copy(n.properties, properties)

	return n
}

// HasProperty reports whether key is set.
func (n *Node) HasProperty(_ context.Context, key string) (bool, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.properties[key]

	return ok, nil
}

// PropertyValueWithDefault returns the value of key or defaultValue if key is not set.
func (n *Node) PropertyValueWithDefault(_ context.Context, key string, defaultValue any) (any, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if value, ok := n.properties[key]; ok {
		return value, nil
	}

	return defaultValue, nil
}

// SetProperty sets key to value.
func (n *Node) SetProperty(_ context.Context, key string, value any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.properties[key] = value

	return nil
}

// Properties returns a copy of all properties.
func (n *Node) Properties() map[string]any {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return maps.Clone(n.properties)
}

// Len returns the number of properties.
func (n *Node) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.properties)
}

var _ lifecycle.Node = (*Node)(nil)
