// Package pool provides object pools for low-allocation scans.
// Uses sync.Pool for automatic memory reuse of candidate heaps.
package pool

import (
	"sync"

	"github.com/hupe1980/knnkit/heap"
)

const (
	// DefaultHeapCapacity is the initial capacity of pooled heaps.
	DefaultHeapCapacity = 64

	// MaxPooledCapacity bounds the capacity of heaps returned to the pool so a
	// single large k does not pin memory.
	MaxPooledCapacity = 1 << 16
)

var doubleHeapPool = sync.Pool{
	New: func() any {
		return heap.NewDoubleIntMaxHeap(DefaultHeapCapacity)
	},
}

// GetDoubleHeap retrieves an empty DoubleIntMaxHeap from the pool.
func GetDoubleHeap() *heap.DoubleIntMaxHeap {
	h := doubleHeapPool.Get().(*heap.DoubleIntMaxHeap)
	h.Clear()
	return h
}

// PutDoubleHeap returns h to the pool for reuse. h must not be used afterwards.
func PutDoubleHeap(h *heap.DoubleIntMaxHeap) {
	if h == nil || h.Cap() > MaxPooledCapacity {
		return
	}
	doubleHeapPool.Put(h)
}
