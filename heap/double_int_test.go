package heap

import (
	"math/rand"
	"slices"
	"testing"
)

func TestDoubleIntMaxHeap(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		h := NewDoubleIntMaxHeap(0)

		h.Add(1.5, 1)
		h.Add(9.0, 2)
		h.Add(4.0, 3)

		if h.Len() != 3 {
			t.Errorf("expected len 3, got %d", h.Len())
		}
		if h.PeekKey() != 9.0 || h.PeekValue() != 2 {
			t.Errorf("expected top (9, 2), got (%v, %d)", h.PeekKey(), h.PeekValue())
		}

		wantKeys := []float64{9.0, 4.0, 1.5}
		wantVals := []int{2, 3, 1}
		for i := range wantKeys {
			k, v, ok := h.Poll()
			if !ok || k != wantKeys[i] || v != wantVals[i] {
				t.Errorf("poll %d: expected (%v, %d), got (%v, %d)", i, wantKeys[i], wantVals[i], k, v)
			}
		}
		if _, _, ok := h.Poll(); ok {
			t.Error("expected empty heap")
		}
	})

	t.Run("Growth", func(t *testing.T) {
		h := NewDoubleIntMaxHeap(0)
		caps := []int{}
		for i := range 20 {
			h.Add(float64(i), i)
			if len(caps) == 0 || caps[len(caps)-1] != h.Cap() {
				caps = append(caps, h.Cap())
			}
		}
		// 0 -> 1 -> 3 -> 7 -> 15 -> 31
		want := []int{1, 3, 7, 15, 31}
		if !slices.Equal(caps, want) {
			t.Errorf("expected capacities %v, got %v", want, caps)
		}
	})

	t.Run("AddLimit", func(t *testing.T) {
		h := NewDoubleIntMaxHeap(4)
		const limit = 3

		for i, k := range []float64{5, 1, 7} {
			if !h.AddLimit(k, i, limit) {
				t.Errorf("expected insert of %v below limit", k)
			}
		}

		// Worse than the max: refused.
		if h.AddLimit(8, 10, limit) {
			t.Error("expected refusal of 8")
		}
		// Equal to the max: refused (no improvement).
		if h.AddLimit(7, 11, limit) {
			t.Error("expected refusal of tie 7")
		}
		// Better: replaces the max.
		if !h.AddLimit(2, 12, limit) {
			t.Error("expected insert of 2")
		}
		if h.Len() != limit {
			t.Errorf("expected len %d, got %d", limit, h.Len())
		}
		if h.PeekKey() != 5 {
			t.Errorf("expected max 5, got %v", h.PeekKey())
		}
	})

	t.Run("ReplaceTop", func(t *testing.T) {
		h := NewDoubleIntMaxHeap(2)
		h.ReplaceTop(3, 1) // empty: behaves like Add
		h.Add(6, 2)
		h.ReplaceTop(1, 3)

		if h.Len() != 2 || h.PeekKey() != 3 || h.PeekValue() != 1 {
			t.Errorf("expected top (3, 1) with len 2, got (%v, %d) len %d", h.PeekKey(), h.PeekValue(), h.Len())
		}
	})

	t.Run("RandomTopK", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		h := NewDoubleIntMaxHeap(8)
		const k = 10

		keys := make([]float64, 500)
		for i := range keys {
			keys[i] = rng.Float64()
			h.AddLimit(keys[i], i, k)
		}

		got := make([]float64, 0, k)
		for !h.IsEmpty() {
			key, val, _ := h.Poll()
			if keys[val] != key {
				t.Fatalf("value %d detached from key %v", val, key)
			}
			got = append(got, key)
		}
		slices.Reverse(got)

		slices.Sort(keys)
		if !slices.Equal(got, keys[:k]) {
			t.Errorf("expected %v, got %v", keys[:k], got)
		}
	})

	t.Run("PeekEmptyPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewDoubleIntMaxHeap(1).PeekKey()
	})

	t.Run("Clear", func(t *testing.T) {
		h := NewDoubleIntMaxHeap(1)
		h.Add(1, 1)
		h.Clear()
		if !h.IsEmpty() || h.Cap() != 1 {
			t.Errorf("expected empty heap with retained capacity, got len %d cap %d", h.Len(), h.Cap())
		}
	})
}
