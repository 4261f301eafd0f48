package knn

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/heap"
	"github.com/hupe1980/knnkit/internal/pool"
)

type offsetTie struct {
	dist float64
	off  int
}

// DoubleHeap is a Heap specialized for float64 distances. Candidates are
// tracked by their offset in an ArrayIDs and resolved only by ToList.
// The sentinel is +Inf.
type DoubleHeap struct {
	heap *heap.DoubleIntMaxHeap
	ties []offsetTie // all at heap.PeekKey()
	k    int
	seen int

	pooled bool
}

// NewDoubleHeap creates a float64 heap for k neighbors.
func NewDoubleHeap(k int) (*DoubleHeap, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	return &DoubleHeap{heap: heap.NewDoubleIntMaxHeap(k), k: k}, nil
}

// newPooledDoubleHeap borrows its storage from the heap pool. The caller
// must call release once the heap is drained.
func newPooledDoubleHeap(k int) (*DoubleHeap, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	return &DoubleHeap{heap: pool.GetDoubleHeap(), k: k, pooled: true}, nil
}

func (h *DoubleHeap) release() {
	if h.pooled {
		pool.PutDoubleHeap(h.heap)
		h.heap = nil
	}
}

// K returns the requested number of neighbors.
func (h *DoubleHeap) K() int { return h.k }

// Len returns the number of held candidates, ties included.
func (h *DoubleHeap) Len() int { return h.heap.Len() + len(h.ties) }

// KnnDistance returns the current k-th smallest distance, or +Inf.
func (h *DoubleHeap) KnnDistance() float64 {
	if h.heap.Len() < h.k {
		return math.Inf(1)
	}
	return h.heap.PeekKey()
}

// WouldAccept reports whether a candidate at distance d would be kept.
func (h *DoubleHeap) WouldAccept(d float64) bool {
	return h.heap.Len() < h.k || d <= h.heap.PeekKey()
}

// Insert adds the candidate at offset off. Call it only after WouldAccept(d)
// returned true.
func (h *DoubleHeap) Insert(d float64, off int) {
	h.seen++
	if h.heap.Len() < h.k {
		h.heap.Add(d, off)
		return
	}

	top := h.heap.PeekKey()
	switch {
	case d > top:
		return
	case d == top:
		h.ties = append(h.ties, offsetTie{dist: d, off: off})
		return
	}

	evicted := h.heap.PeekValue()
	h.heap.ReplaceTop(d, off)
	if h.heap.PeekKey() == top {
		h.ties = append(h.ties, offsetTie{dist: top, off: evicted})
	} else {
		h.ties = h.ties[:0]
	}
}

// Add checks and inserts in one step and reports whether the candidate was kept.
func (h *DoubleHeap) Add(d float64, off int) bool {
	if !h.WouldAccept(d) {
		h.seen++
		return false
	}
	h.Insert(d, off)
	return true
}

// ToList drains the heap into a List sorted by ascending distance, resolving
// offsets against ids.
func (h *DoubleHeap) ToList(ids dbid.ArrayIDs) (*List[float64], error) {
	n := h.Len()
	if h.seen >= h.k && n < h.k {
		panic(fmt.Sprintf("knn: heap holds %d candidates after %d offers, want at least %d", n, h.seen, h.k))
	}

	pairs := make([]dbid.DistancePair[float64], 0, n)
	for i := len(h.ties) - 1; i >= 0; i-- {
		t := h.ties[i]
		id, err := ids.Get(t.off)
		if err != nil {
			h.Clear()
			return nil, err
		}
		pairs = append(pairs, dbid.DistancePair[float64]{Distance: t.dist, ID: id})
	}
	for {
		d, off, ok := h.heap.Poll()
		if !ok {
			break
		}
		id, err := ids.Get(off)
		if err != nil {
			h.Clear()
			return nil, err
		}
		pairs = append(pairs, dbid.DistancePair[float64]{Distance: d, ID: id})
	}
	slices.Reverse(pairs)

	h.Clear()
	return &List[float64]{pairs: pairs, k: h.k, sentinel: math.Inf(1)}, nil
}

// Clear discards all candidates.
func (h *DoubleHeap) Clear() {
	h.heap.Clear()
	h.ties = h.ties[:0]
	h.seen = 0
}
