package pool

import (
	"sync"
	"testing"

	"github.com/hupe1980/knnkit/heap"
)

func TestDoubleHeap_Basic(t *testing.T) {
	h := GetDoubleHeap()
	if !h.IsEmpty() {
		t.Error("New heap should be empty")
	}

	h.Add(1, 10)
	h.Add(3, 30)
	PutDoubleHeap(h)

	h = GetDoubleHeap()
	defer PutDoubleHeap(h)
	if h.Len() != 0 {
		t.Errorf("Pooled heap should be cleared, got len %d", h.Len())
	}
}

func TestDoubleHeap_Oversized(t *testing.T) {
	// Must not panic; the heap is dropped instead of pooled.
	PutDoubleHeap(heap.NewDoubleIntMaxHeap(MaxPooledCapacity + 1))
	PutDoubleHeap(nil)
}

func TestDoubleHeap_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for j := range 100 {
				h := GetDoubleHeap()
				h.Add(float64(seed*j), j)
				if h.Len() != 1 {
					t.Errorf("Expected len 1, got %d", h.Len())
				}
				PutDoubleHeap(h)
			}
		}(i)
	}
	wg.Wait()
}
