package knn

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/heap"
)

// Heap collects the k nearest candidates, retaining ties at the k-th distance.
//
// A Heap is not safe for concurrent use.
type Heap[D cmp.Ordered] struct {
	b        *heap.Bounded[dbid.DistancePair[D]]
	k        int
	sentinel D
	seen     int
}

// NewHeap creates a heap for k neighbors. sentinel is reported as the
// k-distance until k candidates are held.
func NewHeap[D cmp.Ordered](k int, sentinel D) (*Heap[D], error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	b, err := heap.NewBounded(k, heap.RetainTies, dbid.CompareDistancePairs[D])
	if err != nil {
		return nil, err
	}
	return &Heap[D]{b: b, k: k, sentinel: sentinel}, nil
}

// K returns the requested number of neighbors.
func (h *Heap[D]) K() int { return h.k }

// Len returns the number of held candidates, ties included.
func (h *Heap[D]) Len() int { return h.b.Len() }

// Sentinel returns the k-distance reported while fewer than k candidates are held.
func (h *Heap[D]) Sentinel() D { return h.sentinel }

// KnnDistance returns the current k-th smallest distance, or the sentinel.
// It never increases as candidates are added.
func (h *Heap[D]) KnnDistance() D {
	if h.b.Len() < h.k {
		return h.sentinel
	}
	worst, _ := h.b.Peek()
	return worst.Distance
}

// WouldAccept reports whether a candidate at distance d would be kept.
func (h *Heap[D]) WouldAccept(d D) bool {
	if h.b.Len() < h.k {
		return true
	}
	worst, _ := h.b.Peek()
	return cmp.Compare(d, worst.Distance) <= 0
}

// Insert adds a candidate. Call it only after WouldAccept(d) returned true;
// a rejected candidate is silently dropped.
func (h *Heap[D]) Insert(d D, ref dbid.IDRef) {
	h.seen++
	h.b.Offer(dbid.NewDistancePair(d, ref))
}

// Add checks and inserts in one step and reports whether the candidate was kept.
func (h *Heap[D]) Add(d D, ref dbid.IDRef) bool {
	if !h.WouldAccept(d) {
		h.seen++
		return false
	}
	h.Insert(d, ref)
	return true
}

// ToList drains the heap into a List sorted by ascending distance.
func (h *Heap[D]) ToList() *List[D] {
	pairs := h.b.ToSortedList()
	if h.seen >= h.k && len(pairs) < h.k {
		panic(fmt.Sprintf("knn: heap holds %d candidates after %d offers, want at least %d", len(pairs), h.seen, h.k))
	}
	h.seen = 0
	return &List[D]{pairs: pairs, k: h.k, sentinel: h.sentinel}
}

// Clear discards all candidates.
func (h *Heap[D]) Clear() {
	h.b.Clear()
	h.seen = 0
}
