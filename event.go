package hover

import "sync"

// EventSink is the interface for optional ECS integration. When set on a
// HoverSystem, every transition event is also forwarded to the sink in
// emission order.
type EventSink interface {
	EmitHoverEvent(event HoverEvent)
}

type eventHandler struct {
	id uint32
	fn func(HoverEvent)
}

// EventQueue is an ordered, multi-subscriber channel of hover transitions.
// HoverSystem publishes into it during a step; Flush delivers the queued
// events to every subscriber after the step has finished.
type EventQueue struct {
	mu       sync.Mutex
	pending  []HoverEvent
	handlers []eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a subscription.
type CallbackHandle struct {
	id    uint32
	queue *EventQueue
}

// Remove unsubscribes the callback. Calling Remove more than once, or on a
// zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.queue == nil {
		return
	}
	q := h.queue
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.handlers {
		if q.handlers[i].id == h.id {
			copy(q.handlers[i:], q.handlers[i+1:])
			q.handlers[len(q.handlers)-1] = eventHandler{}
			q.handlers = q.handlers[:len(q.handlers)-1]
			return
		}
	}
}

// Subscribe registers fn to receive every event flushed from now on.
// Subscribers are called in registration order.
func (q *EventQueue) Subscribe(fn func(HoverEvent)) CallbackHandle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	id := q.nextID
	q.handlers = append(q.handlers, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, queue: q}
}

// Publish appends an event to the queue. It is not delivered until Flush.
func (q *EventQueue) Publish(e HoverEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()
}

// Pending returns the number of queued, undelivered events.
func (q *EventQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush delivers queued events in publish order and returns how many were
// delivered. Each event reaches every subscriber before the next event is
// delivered. Events published by a subscriber during Flush stay queued for
// the next call.
func (q *EventQueue) Flush() int {
	q.mu.Lock()
	events := q.pending
	q.pending = nil
	handlers := make([]eventHandler, len(q.handlers))
	copy(handlers, q.handlers)
	q.mu.Unlock()

	for _, e := range events {
		for _, h := range handlers {
			h.fn(e)
		}
	}
	return len(events)
}
