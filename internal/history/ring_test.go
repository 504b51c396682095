package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	t.Run("push and pop are LIFO", func(t *testing.T) {
		r := NewRing[int](3)
		r.Push(1)
		r.Push(2)

		v, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("full ring evicts oldest", func(t *testing.T) {
		r := NewRing[int](3)
		for i := 1; i <= 3; i++ {
			_, evicted := r.Push(i)
			assert.False(t, evicted)
		}
		old, evicted := r.Push(4)
		assert.True(t, evicted)
		assert.Equal(t, 1, old)
		assert.Equal(t, []int{2, 3, 4}, r.Items())

		top, _ := r.Peek()
		assert.Equal(t, 4, top)
	})

	t.Run("wraps after pops", func(t *testing.T) {
		r := NewRing[string](2)
		r.Push("a")
		r.Push("b")
		r.Push("c")
		r.Pop()
		r.Push("d")
		assert.Equal(t, []string{"b", "d"}, r.Items())
	})

	t.Run("empty ring", func(t *testing.T) {
		r := NewRing[int](0)
		assert.Equal(t, 1, r.Cap())
		_, ok := r.Pop()
		assert.False(t, ok)
		_, ok = r.Peek()
		assert.False(t, ok)
	})

	t.Run("reset", func(t *testing.T) {
		r := NewRing[int](2)
		r.Push(1)
		r.Push(2)
		r.Push(3)
		r.Reset()
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Items())
		r.Push(9)
		assert.Equal(t, []int{9}, r.Items())
	})
}
