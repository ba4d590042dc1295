// Package state holds independently observable values.
//
// A Cell is replaced as a whole; callers must treat the values they read as immutable.
package state

import "sync"

type Cell[T any] struct {
	mu    sync.RWMutex
	value T

	subsMu sync.RWMutex
	subs   map[int]func(T)
	nextId int
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	c.notify(v)
}

// Update replaces the value with fn(current). The read and the write happen under one lock,
// so concurrent updates to the same cell never lose each other.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	next := fn(c.value)
	c.value = next
	c.mu.Unlock()

	c.notify(next)
	return next
}

// Subscribe registers fn to be called with every new value. The returned func removes it.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.subsMu.Lock()
	id := c.nextId
	c.nextId++
	c.subs[id] = fn
	c.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			c.subsMu.Unlock()
		})
	}
}

func (c *Cell[T]) notify(v T) {
	c.subsMu.RLock()
	fns := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}
