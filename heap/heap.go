package heap

import (
	"iter"
	"slices"
)

type entry[E any] struct {
	elem E
	seq  uint64 // insertion order, breaks comparator ties
}

// Heap is a binary min-heap ordered by a comparator.
//
// Duplicates are allowed. Elements that compare equal are polled in the order
// they were offered.
type Heap[E any] struct {
	items []entry[E]
	cmp   func(a, b E) int
	seq   uint64
}

// New creates an empty heap. cmp(a, b) < 0 means a is polled before b.
func New[E any](cmp func(a, b E) int) *Heap[E] {
	return NewWithCapacity(cmp, 16)
}

// NewWithCapacity creates an empty heap with room for capacity elements.
func NewWithCapacity[E any](cmp func(a, b E) int, capacity int) *Heap[E] {
	return &Heap[E]{
		items: make([]entry[E], 0, max(capacity, 0)),
		cmp:   cmp,
	}
}

func (h *Heap[E]) less(a, b entry[E]) bool {
	if c := h.cmp(a.elem, b.elem); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// Offer inserts e.
func (h *Heap[E]) Offer(e E) {
	h.items = append(h.items, entry[E]{elem: e, seq: h.seq})
	h.seq++
	h.up(len(h.items) - 1)
}

// Peek returns the minimum without removing it.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	return h.items[0].elem, true
}

// PeekLast returns the maximum without removing it.
// This is O(n/2): the maximum is one of the leaves.
func (h *Heap[E]) PeekLast() (E, bool) {
	n := len(h.items)
	if n == 0 {
		var zero E
		return zero, false
	}
	last := n / 2
	for i := n/2 + 1; i < n; i++ {
		if h.less(h.items[last], h.items[i]) {
			last = i
		}
	}
	return h.items[last].elem, true
}

// Poll removes and returns the minimum.
func (h *Heap[E]) Poll() (E, bool) {
	n := len(h.items)
	if n == 0 {
		var zero E
		return zero, false
	}

	top := h.items[0].elem
	h.items[0] = h.items[n-1]
	h.items[n-1] = entry[E]{}
	h.items = h.items[:n-1]

	if len(h.items) > 0 {
		h.down(0)
	}
	return top, true
}

// Len returns the number of elements.
func (h *Heap[E]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap has no elements.
func (h *Heap[E]) IsEmpty() bool { return len(h.items) == 0 }

// Clear removes all elements.
func (h *Heap[E]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
	h.seq = 0
}

// All iterates over the elements in heap (not sorted) order.
func (h *Heap[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, it := range h.items {
			if !yield(it.elem) {
				return
			}
		}
	}
}

// ToSortedList drains the heap and returns its elements in ascending order.
// The heap is empty afterwards.
func (h *Heap[E]) ToSortedList() []E {
	out := make([]E, 0, len(h.items))
	for len(h.items) > 0 {
		e, _ := h.Poll()
		out = append(out, e)
	}
	return slices.Clip(out)
}

// up moves the element at j towards the root with a single final write.
func (h *Heap[E]) up(j int) {
	item := h.items[j]
	for j > 0 {
		parent := (j - 1) / 2
		if !h.less(item, h.items[parent]) {
			break
		}
		h.items[j] = h.items[parent]
		j = parent
	}
	h.items[j] = item
}

// down moves the element at i towards the leaves with a single final write.
func (h *Heap[E]) down(i int) {
	n := len(h.items)
	item := h.items[i]
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.less(h.items[right], h.items[child]) {
			child = right
		}
		if !h.less(h.items[child], item) {
			break
		}
		h.items[i] = h.items[child]
		i = child
	}
	h.items[i] = item
}
