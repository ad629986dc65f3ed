// Package binding lets external state holders observe the slider value
// without the slider reaching into caller-owned state.
package binding

import (
	"slices"
	"sync"
)

const valueBufferSize = 16

// Transform converts a slider value before it reaches a subscriber.
type Transform func(float64) float64

// Hub fans value changes out to subscribers.
type Hub struct {
	mu     sync.Mutex
	nextID int
	funcs  []subscriber
	subs   []*Subscription
	closed bool
}

type subscriber struct {
	id        int
	fn        func(float64)
	transform Transform
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn to be called with each published value. The
// optional transform is applied first. The returned func unsubscribes.
func (h *Hub) Subscribe(fn func(float64), transform Transform) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || fn == nil {
		return func() {}
	}
	id := h.nextID
	h.nextID++
	h.funcs = append(h.funcs, subscriber{id: id, fn: fn, transform: transform})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.funcs = slices.DeleteFunc(h.funcs, func(s subscriber) bool { return s.id == id })
	}
}

// Channel creates a channel-based subscription for consumers running on
// another goroutine.
func (h *Hub) Channel() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub := newSubscription()
	if h.closed {
		sub.close()
		return sub
	}
	h.subs = append(h.subs, sub)
	return sub
}

// Publish delivers v to every subscriber. Callback subscribers run
// synchronously in registration order; channel subscribers never block the
// publisher.
func (h *Hub) Publish(v float64) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	funcs := slices.Clone(h.funcs)
	subs := slices.Clone(h.subs)
	h.mu.Unlock()

	// callbacks run unlocked so they may unsubscribe or publish
	for _, s := range funcs {
		val := v
		if s.transform != nil {
			val = s.transform(val)
		}
		s.fn(val)
	}
	for _, sub := range subs {
		sub.send(v)
	}
}

// Close ends all channel subscriptions and drops callback subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, sub := range h.subs {
		sub.close()
	}
	h.subs = nil
	h.funcs = nil
}
