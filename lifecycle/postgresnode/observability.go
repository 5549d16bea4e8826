package postgresnode

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

const (
	logMsgBuildQueryFailed   = "failed to build node property query"
	logMsgDBQueryFailed      = "database query execution failed"
	logMsgDBExecFailed       = "database execution failed"
	logMsgCloseRowsFailed    = "failed to close database rows"
	logMsgScanRowFailed      = "failed to scan database row"
	logMsgRowsAffectedFailed = "failed to get rows affected count"
	logMsgEncodeValueFailed  = "failed to encode node property value"
	logMsgDecodeValueFailed  = "failed to decode node property value"
	logMsgSQLExecuted        = "executed sql for: "
	logMsgOperation          = "node store operation: "
	logMsgTableCreated       = "table created"
	logMsgNodeDeleted        = "node deleted"
	logAttrError             = "error"
	logAttrQuery             = "query"
	logAttrDurationMS        = "duration_ms"
	logAttrNodeID            = "node_id"
	logAttrPropertyKey       = "property_key"
	logAttrRowsAffected      = "rows_affected"
	logAttrTable             = "table"

	metricStatementDuration = "node_store_statement_duration_seconds"
	metricErrors            = "node_store_errors_total"
	labelOperation          = "operation"
	labelStatus             = "status"
	statusSuccess           = "success"
	statusError             = "error"
)

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (s NodeStore) logQueryWithDuration(ctx context.Context, sqlQuery string, operation string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+operation, args...)
	}
}

// logOperation logs operational information at info level.
func (s NodeStore) logOperation(ctx context.Context, action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (s NodeStore) logWarn(ctx context.Context, message string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(message, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, args...)
	}
}

// logError logs error information at error level.
func (s NodeStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

func (s NodeStore) recordDuration(ctx context.Context, operation string, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: status}

	if contextualCollector, ok := s.metricsCollector.(lifecycle.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricStatementDuration, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricStatementDuration, duration, labels)
}

func (s NodeStore) recordError(ctx context.Context, operation string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: statusError}

	if contextualCollector, ok := s.metricsCollector.(lifecycle.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricErrors, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricErrors, labels)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
