// Package events provides the in-memory publish/subscribe primitive used for
// session, navigation and balance observation. Subscriptions are explicit
// handles with a disposal contract: after Cancel returns, the subscriber
// receives no further notifications.
package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Hub dispatches values of type T to registered subscribers.
// Publish runs subscribers synchronously, in subscription order, on the
// publishing goroutine; subscribers must not block.
type Hub[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   []*Subscription[T]
	logger *slog.Logger
}

// Subscription is the handle returned by Subscribe. Cancel is idempotent and
// guarantees no callbacks after it returns.
type Subscription[T any] struct {
	id        int
	fn        func(T)
	hub       *Hub[T]
	cancelled atomic.Bool
}

// Cancel removes the subscription from its hub.
func (s *Subscription[T]) Cancel() {
	if !s.cancelled.CompareAndSwap(false, true) {
		return
	}
	s.hub.remove(s.id)
}

// NewHub creates an empty Hub.
func NewHub[T any](logger *slog.Logger) *Hub[T] {
	return &Hub[T]{
		logger: logger.With("component", "event_hub"),
	}
}

// Subscribe registers fn to receive every subsequently published value.
func (h *Hub[T]) Subscribe(fn func(T)) *Subscription[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription[T]{id: h.nextID, fn: fn, hub: h}
	h.subs = append(h.subs, sub)

	h.logger.Debug("registered subscriber", "subscriber_count", len(h.subs))
	return sub
}

// Publish delivers v to all current subscribers.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	subs := make([]*Subscription[T], len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	for _, sub := range subs {
		if sub.cancelled.Load() {
			continue
		}
		sub.fn(v)
	}
}

// Len reports the number of active subscriptions.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub[T]) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, sub := range h.subs {
		if sub.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			h.logger.Debug("cancelled subscriber", "subscriber_count", len(h.subs))
			return
		}
	}
}
