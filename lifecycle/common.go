package lifecycle

import (
	"errors"
)

var ErrNilDocument = errors.New("nil document supplied")
var ErrNilNode = errors.New("nil node supplied")
var ErrNilAccessor = errors.New("nil document accessor supplied")
var ErrUnknownPhase = errors.New("unknown lifecycle phase")
var ErrUnknownEncodingScope = errors.New("unknown property encoding scope")

// DefaultPriority is the priority handlers run with unless they ask for something else.
// Handlers with a higher priority run first.
const DefaultPriority = 0

// Field names the timestamp behaviors use on documents and as input for the PropertyEncoder.
const (
	FieldCreated = "created"
	FieldChanged = "changed"
)
