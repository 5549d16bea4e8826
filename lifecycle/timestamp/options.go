package timestamp

import (
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// Option defines a functional option for configuring Subscriber.
type Option func(*Subscriber) error

// WithClock sets the function used to obtain "now" for persist and restore.
func WithClock(clock func() time.Time) Option {
	return func(s *Subscriber) error {
		if clock == nil {
			return ErrNilClock
		}

		s.clock = clock

		return nil
	}
}

// WithLogger sets the logger for the Subscriber.
// Debug level: events skipped because the document is not supported or has no locale.
func WithLogger(logger lifecycle.Logger) Option {
	return func(s *Subscriber) error {
		s.logger = logger
		return nil
	}
}
