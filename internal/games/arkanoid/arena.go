package arkanoid

import (
	"iter"
	"sort"
)

// Handle is a stable identifier for an arena entry. Handles are never reused
// within one arena.
type Handle uint32

type slot[T any] struct {
	handle Handle
	value  T
}

// Arena stores entities in insertion order behind stable handles.
// Removal compacts the backing slice in one pass, so slots stay sorted by
// handle and lookups can binary-search.
type Arena[T any] struct {
	slots []slot[T]
	next  Handle
}

// NewArena creates an empty arena with room for capacity entries.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert adds a value and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	h := a.next
	a.next++
	a.slots = append(a.slots, slot[T]{handle: h, value: v})
	return h
}

// Get returns the value stored under h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	i := sort.Search(len(a.slots), func(i int) bool {
		return a.slots[i].handle >= h
	})
	if i < len(a.slots) && a.slots[i].handle == h {
		return a.slots[i].value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// All iterates live entries in insertion order.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for _, s := range a.slots {
			if !yield(s.handle, s.value) {
				return
			}
		}
	}
}

// Values iterates live values in insertion order.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range a.slots {
			if !yield(s.value) {
				return
			}
		}
	}
}

// RemoveFunc drops every entry matching pred and returns how many went.
// The predicate must not mutate the arena.
func (a *Arena[T]) RemoveFunc(pred func(Handle, T) bool) int {
	kept := a.slots[:0]
	for _, s := range a.slots {
		if !pred(s.handle, s.value) {
			kept = append(kept, s)
		}
	}
	removed := len(a.slots) - len(kept)

	// Zero the tail so dropped values can be collected
	clear(a.slots[len(kept):])
	a.slots = kept
	return removed
}

// Clear removes every entry. Handles keep increasing.
func (a *Arena[T]) Clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
}
