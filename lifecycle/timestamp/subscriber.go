package timestamp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// Handler names and priorities as registered with a dispatcher.
const (
	HandlerHydrate  = "timestamp.set_on_document"
	HandlerPersist  = "timestamp.set_on_node_for_persist"
	HandlerPublish  = "timestamp.set_on_node_for_publish"
	HandlerRestore  = "timestamp.set_changed_for_restore"
	RestorePriority = -32
)

const (
	logMsgUnsupportedDocument = "timestamp subscriber skipped document without timestamp behavior"
	logMsgMissingLocale       = "timestamp subscriber skipped localized document without locale"
	logAttrPhase              = "phase"
	logAttrDocumentType       = "document_type"
	restoreTick               = time.Microsecond
)

// Subscriber keeps the created/changed timestamps of documents and their nodes in sync.
//
// It holds no per-document state, so one Subscriber can serve concurrent dispatches
// as long as each dispatch works on its own node and document.
type Subscriber struct {
	encoder   lifecycle.PropertyEncoder
	inspector lifecycle.LocaleInspector
	clock     func() time.Time
	logger    lifecycle.Logger
}

// New creates a Subscriber with optional configuration.
func New(
	encoder lifecycle.PropertyEncoder,
	inspector lifecycle.LocaleInspector,
	options ...Option,
) (*Subscriber, error) {

	if encoder == nil {
		return nil, ErrNilEncoder
	}

	if inspector == nil {
		return nil, ErrNilLocaleInspector
	}

	s := &Subscriber{
		encoder:   encoder,
		inspector: inspector,
		clock:     time.Now,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Subscriptions returns the four handlers of the Subscriber.
func (s *Subscriber) Subscriptions() []lifecycle.Subscription {
	return []lifecycle.Subscription{
		{
			Phase:       lifecycle.PhaseHydrate,
			HandlerName: HandlerHydrate,
			Priority:    lifecycle.DefaultPriority,
			Handler:     s.handleHydrate,
		},
		{
			Phase:       lifecycle.PhasePersist,
			HandlerName: HandlerPersist,
			Priority:    lifecycle.DefaultPriority,
			Handler:     s.handlePersist,
		},
		{
			Phase:       lifecycle.PhasePublish,
			HandlerName: HandlerPublish,
			Priority:    lifecycle.DefaultPriority,
			Handler:     s.handlePublish,
		},
		{
			Phase:       lifecycle.PhaseRestore,
			HandlerName: HandlerRestore,
			Priority:    RestorePriority,
			Handler:     s.handleRestore,
		},
	}
}

// SupportsDocument reports whether the Subscriber acts on document at all.
func (s *Subscriber) SupportsDocument(document any) bool {
	_, ok := lifecycle.QueryTimestampCapability(document)
	return ok
}

func (s *Subscriber) handleHydrate(ctx context.Context, event lifecycle.Event) error {
	return s.Hydrate(ctx, event.Document(), event.Node(), event.Accessor())
}

func (s *Subscriber) handlePersist(ctx context.Context, event lifecycle.Event) error {
	return s.Persist(ctx, event.Document(), event.Node(), event.Accessor(), lifecycle.UseSuppliedInstant(s.clock()))
}

func (s *Subscriber) handlePublish(ctx context.Context, event lifecycle.Event) error {
	return s.Persist(ctx, event.Document(), event.Node(), event.Accessor(), lifecycle.UseDocumentValue())
}

func (s *Subscriber) handleRestore(ctx context.Context, event lifecycle.Event) error {
	return s.Restore(ctx, event.Document(), event.Node())
}

// Hydrate copies the changed and created timestamps from the node onto the document.
// Missing properties are written to the document as nil. The node is not modified.
func (s *Subscriber) Hydrate(
	ctx context.Context,
	document any,
	node lifecycle.Node,
	accessor lifecycle.DocumentAccessor,
) error {

	capability, ok := lifecycle.QueryTimestampCapability(document)
	if !ok {
		s.logSkipped(logMsgUnsupportedDocument, lifecycle.PhaseHydrate, document)
		return nil
	}

	locale := s.inspector.OriginalLocale(document)

	for _, field := range []string{lifecycle.FieldChanged, lifecycle.FieldCreated} {
		key, err := s.encoder.Encode(capability.Scope(), field, locale)
		if err != nil {
			return err
		}

		raw, err := node.PropertyValueWithDefault(ctx, key, nil)
		if err != nil {
			return err
		}

		value, err := toTimestamp(raw)
		if err != nil {
			return fmt.Errorf("%w: property %q", err, key)
		}

		if err := accessor.Set(field, value); err != nil {
			return err
		}
	}

	return nil
}

// Persist writes the document's timestamps to the node and mirrors them onto the document.
//
// The created property is only written if the node does not have it yet; the document's own
// created value wins over the instant from source. The changed property is always written,
// using the instant from source if it supplies one and the document's own changed value otherwise.
// If neither source nor document has a changed value, the property is left as it is.
//
// Each value is written to the node first and mirrored onto the document only after the node
// accepted it, so a failed write leaves the document unchanged.
//
// Localized documents without a locale are skipped.
func (s *Subscriber) Persist(
	ctx context.Context,
	document any,
	node lifecycle.Node,
	accessor lifecycle.DocumentAccessor,
	source lifecycle.InstantSource,
) error {

	capability, ok := lifecycle.QueryTimestampCapability(document)
	if !ok {
		s.logSkipped(logMsgUnsupportedDocument, lifecycle.PhasePersist, document)
		return nil
	}

	locale := s.inspector.OriginalLocale(document)
	if capability.Scope().IsLocalized() && locale == "" {
		s.logSkipped(logMsgMissingLocale, lifecycle.PhasePersist, document)
		return nil
	}

	createdKey, changedKey, err := s.encodeKeys(capability.Scope(), locale)
	if err != nil {
		return err
	}

	instant, supplied := source.Instant()
	behavior := capability.Behavior()

	hasCreated, err := node.HasProperty(ctx, createdKey)
	if err != nil {
		return err
	}

	if !hasCreated {
		created := copyTime(behavior.Created())
		if created == nil && supplied {
			created = copyTime(&instant)
		}

		if created != nil {
			if err := s.writeTimestamp(ctx, node, accessor, lifecycle.FieldCreated, createdKey, *created); err != nil {
				return err
			}
		}
	}

	changed := copyTime(behavior.Changed())
	if supplied {
		changed = copyTime(&instant)
	}

	if changed == nil {
		return nil
	}

	return s.writeTimestamp(ctx, node, accessor, lifecycle.FieldChanged, changedKey, *changed)
}

// Restore stamps the node's changed property with the current time. The document is not touched.
//
// The stamped value is always later than the changed value already stored on the node.
// Localized documents without a locale are skipped.
func (s *Subscriber) Restore(ctx context.Context, document any, node lifecycle.Node) error {
	capability, ok := lifecycle.QueryTimestampCapability(document)
	if !ok {
		s.logSkipped(logMsgUnsupportedDocument, lifecycle.PhaseRestore, document)
		return nil
	}

	locale := s.inspector.OriginalLocale(document)
	if capability.Scope().IsLocalized() && locale == "" {
		s.logSkipped(logMsgMissingLocale, lifecycle.PhaseRestore, document)
		return nil
	}

	changedKey, err := s.encoder.Encode(capability.Scope(), lifecycle.FieldChanged, locale)
	if err != nil {
		return err
	}

	raw, err := node.PropertyValueWithDefault(ctx, changedKey, nil)
	if err != nil {
		return err
	}

	previous, err := toTimestamp(raw)
	if err != nil {
		return fmt.Errorf("%w: property %q", err, changedKey)
	}

	now := s.clock()
	if previous != nil && !now.After(*previous) {
		now = previous.Add(restoreTick)
	}

	return node.SetProperty(ctx, changedKey, now)
}

func (s *Subscriber) encodeKeys(scope lifecycle.EncodingScope, locale string) (string, string, error) {
	createdKey, err := s.encoder.Encode(scope, lifecycle.FieldCreated, locale)
	if err != nil {
		return "", "", err
	}

	changedKey, err := s.encoder.Encode(scope, lifecycle.FieldChanged, locale)
	if err != nil {
		return "", "", err
	}

	return createdKey, changedKey, nil
}

func (s *Subscriber) writeTimestamp(
	ctx context.Context,
	node lifecycle.Node,
	accessor lifecycle.DocumentAccessor,
	field string,
	key string,
	value time.Time,
) error {

	if err := node.SetProperty(ctx, key, value); err != nil {
		return err
	}

	return accessor.Set(field, copyTime(&value))
}

func (s *Subscriber) logSkipped(msg string, phase lifecycle.Phase, document any) {
	if s.logger != nil {
		s.logger.Debug(msg, logAttrPhase, string(phase), logAttrDocumentType, fmt.Sprintf("%T", document))
	}
}

// toTimestamp converts a raw node value into a timestamp. Nil means the property is absent.
// Strings are accepted in RFC 3339 format for stores that keep timestamps as text.
func toTimestamp(raw any) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return copyTime(v), nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimestampValue, err)
		}

		return &parsed, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidTimestampValue, raw)
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	c := *t

	return &c
}

var _ lifecycle.Subscriber = (*Subscriber)(nil)
