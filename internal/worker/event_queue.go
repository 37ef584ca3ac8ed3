package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/events"
)

var (
	// ErrQueueFull is returned when an event is dropped because the buffer is
	// at capacity.
	ErrQueueFull = errors.New("event queue full")
	// ErrQueueClosed is returned by Publish after Stop.
	ErrQueueClosed = errors.New("event queue closed")
)

const defaultQueueSize = 256

type queuedEvent struct {
	ctx   context.Context
	event events.Event
}

// EventQueue is an events.Dispatcher that buffers published events and
// delivers them to the wrapped dispatcher from a single goroutine, in
// publish order. Publish never blocks.
type EventQueue struct {
	next   events.Dispatcher
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

// NewEventQueue starts the delivery goroutine. Call Stop to drain and end it.
func NewEventQueue(next events.Dispatcher, size int, logger *zap.Logger) *EventQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	q := &EventQueue{
		next:   next,
		logger: logger,
		queue:  make(chan queuedEvent, size),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *EventQueue) run() {
	defer close(q.done)
	for item := range q.queue {
		_ = q.next.Publish(item.ctx, item.event)
	}
}

// Publish enqueues the event, dropping it when the buffer is full.
func (q *EventQueue) Publish(ctx context.Context, event events.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		q.logger.Warn("event dropped",
			zap.String("event_type", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.Int("capacity", cap(q.queue)))
		return ErrQueueFull
	}
}

// Subscribe registers a handler on the wrapped dispatcher.
func (q *EventQueue) Subscribe(eventType events.EventType, handler events.EventHandler) {
	q.next.Subscribe(eventType, handler)
}

// SubscribeAll registers a wildcard handler on the wrapped dispatcher.
func (q *EventQueue) SubscribeAll(handler events.EventHandler) {
	q.next.SubscribeAll(handler)
}

// Stop rejects further events, delivers the ones already queued and waits
// for the goroutine to exit. It is safe to call more than once.
func (q *EventQueue) Stop() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.queue)
	}
	q.mu.Unlock()
	<-q.done
}
