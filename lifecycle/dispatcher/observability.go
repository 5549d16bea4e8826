package dispatcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

const (
	metricDispatchDuration = "lifecycle_dispatch_duration_seconds"
	metricHandlerDuration  = "lifecycle_handler_duration_seconds"
	metricHandlersInvoked  = "lifecycle_handlers_invoked"
	metricHandlerErrors    = "lifecycle_handler_errors_total"
	spanNameDispatch       = "lifecycle.dispatch"
	spanAttrPhase          = "phase"
	spanAttrHandler        = "handler"
	spanAttrHandlerCount   = "handler_count"
	spanAttrDurationMS     = "duration_ms"
	spanAttrFailedHandler  = "failed_handler"
	labelStatus            = "status"
	statusSuccess          = "success"
	statusError            = "error"
)

// logHandlerInvocation logs a single handler invocation at debug level.
func (d *Dispatcher) logHandlerInvocation(
	ctx context.Context,
	phase lifecycle.Phase,
	handlerName string,
	duration time.Duration,
) {
	args := []any{logAttrPhase, string(phase), logAttrHandler, handlerName, logAttrDurationMS, toMilliseconds(duration)}

	if d.logger != nil {
		d.logger.Debug(logMsgHandlerInvoked, args...)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.DebugContext(ctx, logMsgHandlerInvoked, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (d *Dispatcher) logOperation(ctx context.Context, action string, args ...any) {
	if d.logger != nil {
		d.logger.Info(logMsgOperation+action, args...)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (d *Dispatcher) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if d.logger != nil {
		d.logger.Error(message, allArgs...)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// === Metrics Observer Pattern ===

// dispatchMetricsObserver encapsulates the metrics collection for one dispatch.
type dispatchMetricsObserver struct {
	d     *Dispatcher
	ctx   context.Context
	phase lifecycle.Phase
}

// startDispatchMetrics creates a new metrics observer for a dispatch.
func (d *Dispatcher) startDispatchMetrics(ctx context.Context, phase lifecycle.Phase) *dispatchMetricsObserver {
	return &dispatchMetricsObserver{d: d, ctx: ctx, phase: phase}
}

// recordHandlerSuccess records the duration of a handler that returned without error.
func (o *dispatchMetricsObserver) recordHandlerSuccess(handlerName string, duration time.Duration) {
	o.d.recordDurationContext(o.ctx, metricHandlerDuration, duration, o.labels(handlerName, statusSuccess))
}

// recordHandlerError records the duration of a failed handler and increments the error counter.
func (o *dispatchMetricsObserver) recordHandlerError(handlerName string, duration time.Duration) {
	labels := o.labels(handlerName, statusError)
	o.d.recordDurationContext(o.ctx, metricHandlerDuration, duration, labels)
	o.d.incrementCounterContext(o.ctx, metricHandlerErrors, labels)
}

// recordDispatchSuccess records the overall dispatch duration and the number of invoked handlers.
func (o *dispatchMetricsObserver) recordDispatchSuccess(handlerCount int, duration time.Duration) {
	labels := o.labels("", statusSuccess)
	o.d.recordDurationContext(o.ctx, metricDispatchDuration, duration, labels)
	o.d.recordValueContext(o.ctx, metricHandlersInvoked, float64(handlerCount), labels)
}

func (o *dispatchMetricsObserver) labels(handlerName string, status string) map[string]string {
	labels := map[string]string{
		spanAttrPhase: string(o.phase),
		labelStatus:   status,
	}

	if handlerName != "" {
		labels[spanAttrHandler] = handlerName
	}

	return labels
}

// recordDurationContext records a duration with context if the collector supports it.
func (d *Dispatcher) recordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if d.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := d.metricsCollector.(lifecycle.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		d.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (d *Dispatcher) incrementCounterContext(ctx context.Context, metric string, labels map[string]string) {
	if d.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := d.metricsCollector.(lifecycle.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		d.metricsCollector.IncrementCounter(metric, labels)
	}
}

// recordValueContext records a value with context if the collector supports it.
func (d *Dispatcher) recordValueContext(ctx context.Context, metric string, value float64, labels map[string]string) {
	if d.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := d.metricsCollector.(lifecycle.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		d.metricsCollector.RecordValue(metric, value, labels)
	}
}

// === Tracing Observer Pattern ===

// dispatchTracingObserver encapsulates tracing span lifecycle management for one dispatch.
type dispatchTracingObserver struct {
	d    *Dispatcher
	span lifecycle.SpanContext
}

// startDispatchTracing starts a span for the dispatch if a tracing collector is configured.
func (d *Dispatcher) startDispatchTracing(
	ctx context.Context,
	phase lifecycle.Phase,
	handlerCount int,
) (*dispatchTracingObserver, context.Context) {

	observer := &dispatchTracingObserver{d: d}
	if d.tracingCollector == nil {
		return observer, ctx
	}

	newCtx, span := d.tracingCollector.StartSpan(ctx, spanNameDispatch, map[string]string{
		spanAttrPhase:        string(phase),
		spanAttrHandlerCount: fmt.Sprintf("%d", handlerCount),
	})
	observer.span = span

	return observer, newCtx
}

// finishSuccess completes the span for a dispatch in which all handlers succeeded.
func (o *dispatchTracingObserver) finishSuccess(duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
	o.d.tracingCollector.FinishSpan(o.span, statusSuccess, nil)
}

// finishError completes the span for a dispatch aborted by handlerName.
func (o *dispatchTracingObserver) finishError(handlerName string, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrFailedHandler, handlerName)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(duration)))
	o.d.tracingCollector.FinishSpan(o.span, statusError, map[string]string{spanAttrFailedHandler: handlerName})
}
