// Package heap provides the ordered heaps behind bounded nearest-neighbor
// search.
//
//   - Heap: a binary heap over any element type with a comparator. Equal
//     elements leave the heap in insertion order.
//   - Bounded: keeps the best maxSize elements. Its OverflowPolicy decides what
//     happens at the boundary: Evict drops the worst element, RetainTies keeps
//     every element tied with the worst retained one, so Len may exceed
//     maxSize while ties persist.
//   - Updatable: a heap with a key index for decrease-key and direct removal.
//   - DoubleIntMaxHeap: an unboxed (float64, int) max-heap for inner loops.
//
// None of the heaps are safe for concurrent use.
package heap
