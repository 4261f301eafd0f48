// Package knn implements k-nearest-neighbor collection and exhaustive search.
//
// A Heap keeps the k best (distance, id) candidates seen so far and retains
// every candidate that ties with the k-th distance, so the materialized List
// may hold more than k entries. Until k candidates have been seen the
// k-distance is the caller-supplied sentinel, typically the maximum value of
// the distance type.
//
// Candidate generation uses a two-phase protocol: WouldAccept checks a
// distance without constructing anything, and Insert is called only for
// accepted candidates.
//
//	h, _ := knn.NewHeap(k, math.Inf(1))
//	for id := range ids.All() {
//		if d := dist(q, id); h.WouldAccept(d) {
//			h.Insert(d, id)
//		}
//	}
//	list := h.ToList()
//
// DoubleHeap is the float64 specialization over heap.DoubleIntMaxHeap that
// tracks candidates by offset instead of by id.
package knn
