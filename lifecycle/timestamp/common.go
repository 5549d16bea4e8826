package timestamp

import "errors"

var ErrNilEncoder = errors.New("nil property encoder supplied")
var ErrNilLocaleInspector = errors.New("nil locale inspector supplied")
var ErrNilClock = errors.New("nil clock supplied")
var ErrInvalidTimestampValue = errors.New("node property does not hold a timestamp")
