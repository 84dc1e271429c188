// Package history keeps a small bounded record of recent wake events.
// It feeds context packing only; the durable audit trail lives elsewhere.
package history

import (
	"sync"

	"VitalSentinel/internal/model"
)

// DefaultCapacity bounds the ring when no explicit capacity is given.
const DefaultCapacity = 20

// Ring is a fixed-capacity append-only event buffer. Insertion evicts the
// oldest entry once full.
type Ring struct {
	mu     sync.Mutex
	events []model.WakeEvent
	cap    int
}

// NewRing creates a ring holding at most capacity events.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{cap: capacity}
}

// Add appends an event, evicting the oldest if the ring is full.
func (r *Ring) Add(ev model.WakeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
	if len(r.events) > r.cap {
		r.events = r.events[len(r.events)-r.cap:]
	}
}

// Recent returns the most recent n events, newest first.
func (r *Ring) Recent(n int) []model.WakeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	out := make([]model.WakeEvent, 0, n)
	for i := len(r.events) - 1; i >= len(r.events)-n; i-- {
		out = append(out, r.events[i])
	}
	return out
}

// Len reports how many events are currently held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
