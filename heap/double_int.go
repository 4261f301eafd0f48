package heap

// DoubleIntMaxHeap is a binary max-heap of (float64 key, int value) pairs in
// two flat arrays. It exists for the innermost loop of nearest-neighbor search,
// where a generic heap's per-element overhead dominates.
//
// Keys must not be NaN.
type DoubleIntMaxHeap struct {
	keys []float64
	vals []int
	size int
}

// NewDoubleIntMaxHeap creates a heap with room for capacity pairs.
func NewDoubleIntMaxHeap(capacity int) *DoubleIntMaxHeap {
	capacity = max(capacity, 0)
	return &DoubleIntMaxHeap{
		keys: make([]float64, capacity),
		vals: make([]int, capacity),
	}
}

// Add inserts a pair.
func (h *DoubleIntMaxHeap) Add(key float64, val int) {
	if h.size == len(h.keys) {
		h.grow()
	}
	h.up(h.size, key, val)
	h.size++
}

// AddLimit inserts the pair if the heap holds fewer than limit pairs, or
// replaces the top if key is smaller than the current maximum. It reports
// whether the pair was inserted.
func (h *DoubleIntMaxHeap) AddLimit(key float64, val int, limit int) bool {
	if h.size < limit {
		h.Add(key, val)
		return true
	}
	if h.size > 0 && key < h.keys[0] {
		h.ReplaceTop(key, val)
		return true
	}
	return false
}

// ReplaceTop removes the maximum and inserts (key, val) with a single sift.
// On an empty heap it behaves like Add.
func (h *DoubleIntMaxHeap) ReplaceTop(key float64, val int) {
	if h.size == 0 {
		h.Add(key, val)
		return
	}
	h.down(0, key, val)
}

// PeekKey returns the maximum key.
// Panics if the heap is empty - caller should check Len() > 0.
func (h *DoubleIntMaxHeap) PeekKey() float64 {
	if h.size == 0 {
		panic("heap: PeekKey on empty DoubleIntMaxHeap")
	}
	return h.keys[0]
}

// PeekValue returns the value paired with the maximum key.
// Panics if the heap is empty - caller should check Len() > 0.
func (h *DoubleIntMaxHeap) PeekValue() int {
	if h.size == 0 {
		panic("heap: PeekValue on empty DoubleIntMaxHeap")
	}
	return h.vals[0]
}

// Poll removes the maximum pair and returns it.
// ok is false if the heap was empty.
func (h *DoubleIntMaxHeap) Poll() (key float64, val int, ok bool) {
	if h.size == 0 {
		return 0, 0, false
	}
	key, val = h.keys[0], h.vals[0]
	h.size--
	if h.size > 0 {
		h.down(0, h.keys[h.size], h.vals[h.size])
	}
	return key, val, true
}

// Len returns the number of pairs.
func (h *DoubleIntMaxHeap) Len() int { return h.size }

// IsEmpty reports whether the heap has no pairs.
func (h *DoubleIntMaxHeap) IsEmpty() bool { return h.size == 0 }

// Cap returns the current capacity of the backing arrays.
func (h *DoubleIntMaxHeap) Cap() int { return len(h.keys) }

// Clear removes all pairs, keeping the backing arrays.
func (h *DoubleIntMaxHeap) Clear() { h.size = 0 }

// grow doubles the backing arrays plus one slot.
func (h *DoubleIntMaxHeap) grow() {
	n := 2*len(h.keys) + 1
	keys := make([]float64, n)
	vals := make([]int, n)
	copy(keys, h.keys[:h.size])
	copy(vals, h.vals[:h.size])
	h.keys, h.vals = keys, vals
}

// up places (key, val) at hole j and moves it towards the root.
func (h *DoubleIntMaxHeap) up(j int, key float64, val int) {
	for j > 0 {
		parent := (j - 1) / 2
		if key <= h.keys[parent] {
			break
		}
		h.keys[j], h.vals[j] = h.keys[parent], h.vals[parent]
		j = parent
	}
	h.keys[j], h.vals[j] = key, val
}

// down places (key, val) at hole i and moves it towards the leaves.
func (h *DoubleIntMaxHeap) down(i int, key float64, val int) {
	n := h.size
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.keys[right] > h.keys[child] {
			child = right
		}
		if h.keys[child] <= key {
			break
		}
		h.keys[i], h.vals[i] = h.keys[child], h.vals[child]
		i = child
	}
	h.keys[i], h.vals[i] = key, val
}
