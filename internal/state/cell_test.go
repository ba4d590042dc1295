package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellGetSet(t *testing.T) {
	c := NewCell("a")
	assert.Equal(t, "a", c.Get())

	c.Set("b")
	assert.Equal(t, "b", c.Get())
}

func TestCellSubscribe(t *testing.T) {
	c := NewCell(0)
	var seen []int
	unsubscribe := c.Subscribe(func(v int) { seen = append(seen, v) })

	c.Set(1)
	c.Update(func(v int) int { return v + 10 })
	unsubscribe()
	unsubscribe()
	c.Set(99)

	assert.Equal(t, []int{1, 11}, seen)
}

func TestCellSubscriberMaySetOtherCells(t *testing.T) {
	source := NewCell(1)
	derived := NewCell(0)
	source.Subscribe(func(v int) { derived.Set(v * 2) })

	source.Set(4)
	assert.Equal(t, 8, derived.Get())
}

func TestCellConcurrentUpdates(t *testing.T) {
	c := NewCell(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, c.Get())
}

func TestMemo(t *testing.T) {
	calls := 0
	m := NewMemo(func(s string) int {
		calls++
		return len(s)
	})

	out, recomputed := m.Get("abc")
	assert.Equal(t, 3, out)
	assert.True(t, recomputed)

	out, recomputed = m.Get("abc")
	assert.Equal(t, 3, out)
	assert.False(t, recomputed)

	m.Get("de")
	assert.Equal(t, 2, calls)
}
