package heap

import (
	"cmp"
	"fmt"
	"iter"
)

// Updatable is a heap of keyed entries with an index from key to heap
// position. Entries can be re-prioritized or removed in O(log n).
//
// The index and the heap storage are always updated together. A disagreement
// between them is a bug and panics.
type Updatable[K comparable, P cmp.Ordered] struct {
	items []PriorityObject[P, K]
	index map[K]int
	max   bool
}

// NewUpdatable creates a heap that polls the smallest priority first.
func NewUpdatable[K comparable, P cmp.Ordered]() *Updatable[K, P] {
	return &Updatable[K, P]{index: make(map[K]int)}
}

// NewUpdatableMax creates a heap that polls the largest priority first.
func NewUpdatableMax[K comparable, P cmp.Ordered]() *Updatable[K, P] {
	return &Updatable[K, P]{index: make(map[K]int), max: true}
}

// better reports whether priority a is polled before b.
func (h *Updatable[K, P]) better(a, b P) bool {
	if h.max {
		return cmp.Less(b, a)
	}
	return cmp.Less(a, b)
}

// Offer inserts key, or improves its priority if key is present and prio is
// strictly better (decrease-key). It reports whether the heap changed.
func (h *Updatable[K, P]) Offer(key K, prio P) bool {
	if pos, ok := h.index[key]; ok {
		h.check(pos, key)
		if !h.better(prio, h.items[pos].Priority) {
			return false
		}
		h.items[pos].Priority = prio
		h.up(pos)
		return true
	}

	h.items = append(h.items, PriorityObject[P, K]{Priority: prio, Object: key})
	h.index[key] = len(h.items) - 1
	h.up(len(h.items) - 1)
	return true
}

// Update sets the priority of a present key in either direction.
// Keys that were never inserted are rejected, never inserted.
func (h *Updatable[K, P]) Update(key K, prio P) error {
	pos, ok := h.index[key]
	if !ok {
		return fmt.Errorf("%w: %w: %v", ErrInvalidArgument, ErrNotFound, key)
	}
	h.check(pos, key)

	old := h.items[pos].Priority
	h.items[pos].Priority = prio
	if h.better(prio, old) {
		h.up(pos)
	} else {
		h.down(pos)
	}
	return nil
}

// Remove deletes key and returns its priority.
func (h *Updatable[K, P]) Remove(key K) (P, error) {
	pos, ok := h.index[key]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %w: %v", ErrInvalidArgument, ErrNotFound, key)
	}
	h.check(pos, key)
	return h.removeAt(pos).Priority, nil
}

// Contains reports whether key is in the heap.
func (h *Updatable[K, P]) Contains(key K) bool {
	_, ok := h.index[key]
	return ok
}

// Priority returns the current priority of key.
func (h *Updatable[K, P]) Priority(key K) (P, bool) {
	pos, ok := h.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	h.check(pos, key)
	return h.items[pos].Priority, true
}

// Peek returns the top entry without removing it.
func (h *Updatable[K, P]) Peek() (PriorityObject[P, K], bool) {
	if len(h.items) == 0 {
		return PriorityObject[P, K]{}, false
	}
	return h.items[0], true
}

// Poll removes and returns the top entry.
func (h *Updatable[K, P]) Poll() (PriorityObject[P, K], bool) {
	if len(h.items) == 0 {
		return PriorityObject[P, K]{}, false
	}
	return h.removeAt(0), true
}

// Len returns the number of entries.
func (h *Updatable[K, P]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap has no entries.
func (h *Updatable[K, P]) IsEmpty() bool { return len(h.items) == 0 }

// Clear removes all entries.
func (h *Updatable[K, P]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
	clear(h.index)
}

// All iterates over entries in heap (not sorted) order.
func (h *Updatable[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for _, it := range h.items {
			if !yield(it.Object, it.Priority) {
				return
			}
		}
	}
}

func (h *Updatable[K, P]) removeAt(pos int) PriorityObject[P, K] {
	last := len(h.items) - 1
	removed := h.items[pos]

	h.swap(pos, last)
	h.items[last] = PriorityObject[P, K]{}
	h.items = h.items[:last]
	delete(h.index, removed.Object)

	if pos < last {
		h.down(pos)
		h.up(pos)
	}

	if len(h.index) != len(h.items) {
		panic(fmt.Sprintf("heap: index invariant violated: %d keys indexed, %d entries stored", len(h.index), len(h.items)))
	}
	return removed
}

// check panics if the index entry for key does not point at key.
func (h *Updatable[K, P]) check(pos int, key K) {
	if pos < 0 || pos >= len(h.items) || h.items[pos].Object != key {
		panic(fmt.Sprintf("heap: index invariant violated: key %v indexed at %d", key, pos))
	}
}

func (h *Updatable[K, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].Object] = i
	h.index[h.items[j].Object] = j
}

func (h *Updatable[K, P]) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if !h.better(h.items[j].Priority, h.items[parent].Priority) {
			break
		}
		h.swap(j, parent)
		j = parent
	}
}

func (h *Updatable[K, P]) down(i int) {
	n := len(h.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.better(h.items[right].Priority, h.items[child].Priority) {
			child = right
		}
		if !h.better(h.items[child].Priority, h.items[i].Priority) {
			break
		}
		h.swap(i, child)
		i = child
	}
}
