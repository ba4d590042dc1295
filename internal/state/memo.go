package state

import "sync"

// Memo caches the result of a pure function for its last input.
type Memo[I comparable, O any] struct {
	mu   sync.Mutex
	fn   func(I) O
	has  bool
	last I
	out  O
}

func NewMemo[I comparable, O any](fn func(I) O) *Memo[I, O] {
	return &Memo[I, O]{fn: fn}
}

// Get returns fn(in), recomputing only when in differs from the previous call.
// The second result reports whether a recomputation happened.
func (m *Memo[I, O]) Get(in I) (O, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.has && m.last == in {
		return m.out, false
	}
	m.out = m.fn(in)
	m.last = in
	m.has = true
	return m.out, true
}
