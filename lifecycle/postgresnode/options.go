package postgresnode

import (
	"regexp"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Option defines a functional option for configuring NodeStore.
type Option func(*NodeStore) error

// WithTableName sets the table name for the NodeStore. A schema prefix like "cms.node_properties" is allowed.
func WithTableName(tableName string) Option {
	return func(s *NodeStore) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		if !tableNamePattern.MatchString(tableName) {
			return ErrInvalidTableName
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the NodeStore.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: table creation and node deletion
// Error level: failures that abort an operation.
func WithLogger(logger lifecycle.Logger) Option {
	return func(s *NodeStore) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger for the NodeStore, which receives the same
// messages as the Logger together with the context of the operation.
func WithContextualLogger(logger lifecycle.ContextualLogger) Option {
	return func(s *NodeStore) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the NodeStore.
// It receives statement durations per operation and an error counter.
// Collectors that also implement lifecycle.ContextualMetricsCollector get the operation context.
func WithMetrics(collector lifecycle.MetricsCollector) Option {
	return func(s *NodeStore) error {
		s.metricsCollector = collector
		return nil
	}
}
