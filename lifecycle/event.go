package lifecycle

import (
	"context"
)

// Phase names one lifecycle phase a dispatcher can fire.
type Phase string

const (
	// PhaseHydrate loads a document from its node (store to memory).
	PhaseHydrate Phase = "hydrate"

	// PhasePersist writes a document to its node (memory to store).
	PhasePersist Phase = "persist"

	// PhasePublish promotes a document.
	PhasePublish Phase = "publish"

	// PhaseRestore reverts store-side state of a document.
	PhaseRestore Phase = "restore"
)

// Phases returns all known phases in their natural order.
func Phases() []Phase {
	return []Phase{PhaseHydrate, PhasePersist, PhasePublish, PhaseRestore}
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseHydrate, PhasePersist, PhasePublish, PhaseRestore:
		return true
	default:
		return false
	}
}

// Event is the immutable context of one dispatch.
//
// It should only be constructed with the supplied factory methods:
//   - BuildHydrateEvent
//   - BuildPersistEvent
//   - BuildPublishEvent
//   - BuildRestoreEvent
type Event struct {
	phase    Phase
	document any
	node     Node
	accessor DocumentAccessor
}

// BuildHydrateEvent is a factory method for an Event of PhaseHydrate.
func BuildHydrateEvent(document any, node Node, accessor DocumentAccessor) (Event, error) {
	return buildEventWithAccessor(PhaseHydrate, document, node, accessor)
}

// BuildPersistEvent is a factory method for an Event of PhasePersist.
func BuildPersistEvent(document any, node Node, accessor DocumentAccessor) (Event, error) {
	return buildEventWithAccessor(PhasePersist, document, node, accessor)
}

// BuildPublishEvent is a factory method for an Event of PhasePublish.
func BuildPublishEvent(document any, node Node, accessor DocumentAccessor) (Event, error) {
	return buildEventWithAccessor(PhasePublish, document, node, accessor)
}

// BuildRestoreEvent is a factory method for an Event of PhaseRestore.
//
// Restore events carry no accessor because the in-memory document is reloaded from the node afterward.
func BuildRestoreEvent(document any, node Node) (Event, error) {
	if err := validateEventInput(document, node); err != nil {
		return Event{}, err
	}

	return Event{phase: PhaseRestore, document: document, node: node}, nil
}

func buildEventWithAccessor(phase Phase, document any, node Node, accessor DocumentAccessor) (Event, error) {
	if err := validateEventInput(document, node); err != nil {
		return Event{}, err
	}

	if accessor == nil {
		return Event{}, ErrNilAccessor
	}

	return Event{phase: phase, document: document, node: node, accessor: accessor}, nil
}

func validateEventInput(document any, node Node) error {
	if document == nil {
		return ErrNilDocument
	}

	if node == nil {
		return ErrNilNode
	}

	return nil
}

// Phase returns the lifecycle phase this event belongs to.
func (e Event) Phase() Phase {
	return e.phase
}

// Document returns the document the event was fired for.
func (e Event) Document() any {
	return e.document
}

// Node returns the store node backing the document.
func (e Event) Node() Node {
	return e.node
}

// Accessor returns the document accessor. It is nil for restore events.
func (e Event) Accessor() DocumentAccessor {
	return e.accessor
}

// Handler reacts to one lifecycle event.
type Handler func(ctx context.Context, event Event) error

// Subscription binds a named Handler to a phase with a priority.
type Subscription struct {
	Phase       Phase
	HandlerName string
	Priority    int
	Handler     Handler
}

// Subscriber is implemented by components that register handlers with a dispatcher.
type Subscriber interface {
	Subscriptions() []Subscription
}
