// ring.go implements the fixed-capacity stack backing undo and redo.
//
// Pushing onto a full ring evicts the oldest entry, so memory stays bounded
// however long the session runs. Pop and Peek work from the newest end.

package history

// Ring is a bounded LIFO stack that drops its oldest entry when full.
// The zero value is unusable; create one with NewRing.
type Ring[T any] struct {
	items []T
	head  int // index of the oldest entry
	count int
}

// NewRing returns an empty ring holding at most capacity entries.
// A capacity below 1 is raised to 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Cap returns the maximum number of entries.
func (r *Ring[T]) Cap() int { return len(r.items) }

// Len returns the number of entries held.
func (r *Ring[T]) Len() int { return r.count }

// Push adds v as the newest entry. If the ring was full the oldest entry is
// evicted and returned with evicted set to true.
func (r *Ring[T]) Push(v T) (old T, evicted bool) {
	if r.count == len(r.items) {
		old = r.items[r.head]
		r.items[r.head] = v
		r.head = (r.head + 1) % len(r.items)
		return old, true
	}
	r.items[(r.head+r.count)%len(r.items)] = v
	r.count++
	return old, false
}

// Pop removes and returns the newest entry.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	i := (r.head + r.count - 1) % len(r.items)
	v := r.items[i]
	r.items[i] = zero
	r.count--
	return v, true
}

// Peek returns the newest entry without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.items[(r.head+r.count-1)%len(r.items)], true
}

// Items returns the entries oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.count)
	for i := range r.count {
		out[i] = r.items[(r.head+i)%len(r.items)]
	}
	return out
}

// Reset drops every entry.
func (r *Ring[T]) Reset() {
	clear(r.items)
	r.head = 0
	r.count = 0
}
