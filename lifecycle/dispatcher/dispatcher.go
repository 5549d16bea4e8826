package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

var ErrEmptyHandlerName = errors.New("empty handler name supplied")
var ErrNilHandler = errors.New("nil handler supplied")
var ErrNilSubscriber = errors.New("nil subscriber supplied")

const (
	logMsgHandlerFailed     = "lifecycle handler failed"
	logMsgHandlerInvoked    = "lifecycle handler invoked"
	logMsgDispatchCompleted = "dispatch completed"
	logMsgHandlerRegistered = "lifecycle handler registered"
	logMsgOperation         = "lifecycle operation: "
	logAttrError            = "error"
	logAttrPhase            = "phase"
	logAttrHandler          = "handler"
	logAttrPriority         = "priority"
	logAttrHandlerCount     = "handler_count"
	logAttrDurationMS       = "duration_ms"
)

type registeredHandler struct {
	name     string
	priority int
	handler  lifecycle.Handler
}

// Dispatcher delivers lifecycle events to the handlers registered for their phase.
type Dispatcher struct {
	handlers         map[lifecycle.Phase][]registeredHandler
	mu               sync.RWMutex
	logger           lifecycle.Logger
	contextualLogger lifecycle.ContextualLogger
	metricsCollector lifecycle.MetricsCollector
	tracingCollector lifecycle.TracingCollector
}

// New creates a Dispatcher without any handlers.
func New(options ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: make(map[lifecycle.Phase][]registeredHandler),
	}

	for _, option := range options {
		if err := option(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Subscribe registers handler under handlerName for phase.
//
// Handlers with a higher priority run first, equal priorities run in registration order.
func (d *Dispatcher) Subscribe(phase lifecycle.Phase, handlerName string, priority int, handler lifecycle.Handler) error {
	if !phase.Valid() {
		return fmt.Errorf("%w: %q", lifecycle.ErrUnknownPhase, phase)
	}

	if handlerName == "" {
		return ErrEmptyHandlerName
	}

	if handler == nil {
		return ErrNilHandler
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	list := append(d.handlers[phase], registeredHandler{name: handlerName, priority: priority, handler: handler})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].priority > list[j].priority
	})
	d.handlers[phase] = list

	if d.logger != nil {
		d.logger.Debug(logMsgHandlerRegistered, logAttrPhase, string(phase), logAttrHandler, handlerName, logAttrPriority, priority)
	}

	return nil
}

// AddSubscriber registers all subscriptions of subscriber.
// Registration stops at the first invalid subscription.
func (d *Dispatcher) AddSubscriber(subscriber lifecycle.Subscriber) error {
	if subscriber == nil {
		return ErrNilSubscriber
	}

	for _, subscription := range subscriber.Subscriptions() {
		err := d.Subscribe(subscription.Phase, subscription.HandlerName, subscription.Priority, subscription.Handler)
		if err != nil {
			return err
		}
	}

	return nil
}

// Handlers returns the names of the handlers registered for phase in execution order.
func (d *Dispatcher) Handlers(phase lifecycle.Phase) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers[phase]))
	for _, h := range d.handlers[phase] {
		names = append(names, h.name)
	}

	return names
}

// Dispatch runs the handlers registered for the event's phase in order.
//
// The first handler error stops the dispatch and is returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, event lifecycle.Event) error {
	phase := event.Phase()
	if !phase.Valid() {
		return fmt.Errorf("%w: %q", lifecycle.ErrUnknownPhase, phase)
	}

	handlers := d.handlersFor(phase)

	tracer, ctx := d.startDispatchTracing(ctx, phase, len(handlers))
	metrics := d.startDispatchMetrics(ctx, phase)

	start := time.Now()

	for _, h := range handlers {
		handlerStart := time.Now()
		err := h.handler(ctx, event)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			metrics.recordHandlerError(h.name, handlerDuration)
			d.logError(ctx, logMsgHandlerFailed, err, logAttrPhase, string(phase), logAttrHandler, h.name)
			tracer.finishError(h.name, time.Since(start))

			return err
		}

		metrics.recordHandlerSuccess(h.name, handlerDuration)
		d.logHandlerInvocation(ctx, phase, h.name, handlerDuration)
	}

	duration := time.Since(start)

	metrics.recordDispatchSuccess(len(handlers), duration)
	d.logOperation(
		ctx,
		logMsgDispatchCompleted,
		logAttrPhase, string(phase),
		logAttrHandlerCount, len(handlers),
		logAttrDurationMS, toMilliseconds(duration),
	)
	tracer.finishSuccess(duration)

	return nil
}

// handlersFor returns a snapshot so handlers may register further handlers while a dispatch runs.
func (d *Dispatcher) handlersFor(phase lifecycle.Phase) []registeredHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	handlers := make([]registeredHandler, len(d.handlers[phase]))
	copy(handlers, d.handlers[phase])

	return handlers
}
