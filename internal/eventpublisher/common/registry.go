package common

import (
	"sync"
)

type subscription struct {
	misses int
}

// Registry tracks subscriber channels and their consecutive missed deliveries.
// Removing a subscriber closes its channel exactly once.
type Registry[T any] struct {
	mu          sync.RWMutex
	subscribers map[chan<- T]*subscription
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		subscribers: make(map[chan<- T]*subscription),
	}
}

func (r *Registry[T]) Add(subscriber chan<- T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscribers[subscriber]; !ok {
		r.subscribers[subscriber] = &subscription{}
	}
}

// Remove unregisters and closes subscriber. Unknown channels are left alone.
func (r *Registry[T]) Remove(subscriber chan<- T) {
	if r.drop(subscriber) {
		close(subscriber)
	}
}

// Forget unregisters subscriber without closing it.
func (r *Registry[T]) Forget(subscriber chan<- T) {
	r.drop(subscriber)
}

func (r *Registry[T]) RemoveAll() {
	for _, subscriber := range r.Snapshot() {
		r.Remove(subscriber)
	}
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers)
}

// Snapshot returns the current subscribers. Callers may add or remove while iterating it.
func (r *Registry[T]) Snapshot() []chan<- T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]chan<- T, 0, len(r.subscribers))
	for subscriber := range r.subscribers {
		out = append(out, subscriber)
	}
	return out
}

// Miss records a missed delivery and returns the consecutive miss count.
// It returns 0 for a subscriber that is no longer registered.
func (r *Registry[T]) Miss(subscriber chan<- T) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.subscribers[subscriber]
	if !ok {
		return 0
	}
	s.misses++
	return s.misses
}

// Hit resets the consecutive miss count after a successful delivery.
func (r *Registry[T]) Hit(subscriber chan<- T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.subscribers[subscriber]; ok {
		s.misses = 0
	}
}

func (r *Registry[T]) drop(subscriber chan<- T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscribers[subscriber]; !ok {
		return false
	}
	delete(r.subscribers, subscriber)
	return true
}
