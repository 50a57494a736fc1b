// Package tracking streams live order snapshots to subscribed clients.
//
// A Registry holds the subscribers of every order. A Broadcaster polls the store
// for one subscriber's order and pushes each snapshot to every subscriber of that
// order. Delivery is at most once per tick and nothing is buffered: a subscriber
// that fails a send is dropped.
package tracking

import (
	"errors"
	"sync"

	"dronedelivery/internal/pkg/metrics"
)

// ErrRegistryClosed is returned when subscribing to a closed registry.
var ErrRegistryClosed = errors.New("tracking registry is closed")

// Subscriber receives order snapshots. Implementations must be comparable,
// typically a pointer, and safe for concurrent use.
type Subscriber interface {
	WriteJSON(v any) error
}

// Registry is the set of live subscribers per order id.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.Mutex
	subscribers map[string]map[Subscriber]struct{}
	closed      bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subscribers: make(map[string]map[Subscriber]struct{})}
}

// Subscribe registers sub for the snapshots of orderID.
func (r *Registry) Subscribe(orderID string, sub Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRegistryClosed
	}

	subs, ok := r.subscribers[orderID]
	if !ok {
		subs = make(map[Subscriber]struct{})
		r.subscribers[orderID] = subs
	}
	if _, exists := subs[sub]; !exists {
		subs[sub] = struct{}{}
		metrics.SubscriberAdded()
	}
	return nil
}

// Unsubscribe removes sub. Removing an unknown subscriber does nothing.
func (r *Registry) Unsubscribe(orderID string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(orderID, sub)
}

// IsSubscribed reports whether sub still receives the snapshots of orderID.
func (r *Registry) IsSubscribed(orderID string, sub Subscriber) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subscribers[orderID][sub]
	return ok
}

// Count returns the number of subscribers of orderID.
func (r *Registry) Count(orderID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers[orderID])
}

// Broadcast sends payload to every subscriber of orderID and returns how many
// received it. Subscribers whose send fails are unregistered.
// Sends happen outside the lock, so a slow client does not block other orders.
func (r *Registry) Broadcast(orderID string, payload any) int {
	r.mu.Lock()
	targets := make([]Subscriber, 0, len(r.subscribers[orderID]))
	for sub := range r.subscribers[orderID] {
		targets = append(targets, sub)
	}
	r.mu.Unlock()

	delivered := 0
	for _, sub := range targets {
		if err := sub.WriteJSON(payload); err != nil {
			r.Unsubscribe(orderID, sub)
			continue
		}
		delivered++
	}
	return delivered
}

// Close drops every subscriber and refuses new ones.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for orderID, subs := range r.subscribers {
		for sub := range subs {
			r.remove(orderID, sub)
		}
	}
	r.closed = true
}

// IsClosed reports whether Close was called.
func (r *Registry) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Registry) remove(orderID string, sub Subscriber) {
	subs, ok := r.subscribers[orderID]
	if !ok {
		return
	}
	if _, exists := subs[sub]; !exists {
		return
	}
	delete(subs, sub)
	metrics.SubscriberRemoved()
	if len(subs) == 0 {
		delete(r.subscribers, orderID)
	}
}
