package heap

import (
	"fmt"
	"iter"
	"slices"
)

// OverflowPolicy decides what a Bounded heap does with elements pushed past
// its bound.
type OverflowPolicy int

const (
	// Evict drops the worst element. Len never exceeds MaxSize.
	Evict OverflowPolicy = iota

	// RetainTies keeps every element that ties with the worst retained
	// element. Len may exceed MaxSize while such ties exist; the ties are
	// dropped as soon as a strictly better element moves the boundary.
	RetainTies
)

func (p OverflowPolicy) String() string {
	switch p {
	case Evict:
		return "Evict"
	case RetainTies:
		return "RetainTies"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Bounded keeps the best maxSize elements offered to it, where best means
// smallest under cmp.
type Bounded[E any] struct {
	heap    *Heap[E] // worst element on top
	cmp     func(a, b E) int
	maxSize int
	policy  OverflowPolicy

	ties       []E // all equal to the heap top
	onOverflow func(E)
}

// NewBounded creates a bounded heap. maxSize must be positive.
func NewBounded[E any](maxSize int, policy OverflowPolicy, cmp func(a, b E) int) (*Bounded[E], error) {
	if maxSize < 1 {
		return nil, fmt.Errorf("%w: max size %d", ErrInvalidArgument, maxSize)
	}
	if policy != Evict && policy != RetainTies {
		return nil, fmt.Errorf("%w: overflow policy %v", ErrInvalidArgument, policy)
	}
	return &Bounded[E]{
		heap: NewWithCapacity(func(a, b E) int {
			return cmp(b, a)
		}, maxSize+1),
		cmp:     cmp,
		maxSize: maxSize,
		policy:  policy,
	}, nil
}

// OnOverflow registers fn to receive every element the heap drops, including
// refused offers. By default dropped elements are discarded.
func (b *Bounded[E]) OnOverflow(fn func(E)) {
	b.onOverflow = fn
}

// WouldAccept reports whether Offer(e) would retain e.
func (b *Bounded[E]) WouldAccept(e E) bool {
	if b.heap.Len() < b.maxSize {
		return true
	}
	worst, _ := b.heap.Peek()
	return b.cmp(e, worst) <= 0
}

// Offer inserts e unless the heap is full and e is worse than every retained
// element. It reports whether e was retained.
func (b *Bounded[E]) Offer(e E) bool {
	if !b.WouldAccept(e) {
		b.drop(e)
		return false
	}

	b.heap.Offer(e)
	for b.heap.Len() > b.maxSize {
		evicted, _ := b.heap.Poll()
		b.overflow(evicted)
	}
	return true
}

func (b *Bounded[E]) overflow(e E) {
	if b.policy == RetainTies {
		top, _ := b.heap.Peek()
		if b.cmp(e, top) == 0 {
			b.ties = append(b.ties, e)
			return
		}
		// The boundary moved past the tied value.
		for _, t := range b.ties {
			b.drop(t)
		}
		clear(b.ties)
		b.ties = b.ties[:0]
	}
	b.drop(e)
}

func (b *Bounded[E]) drop(e E) {
	if b.onOverflow != nil {
		b.onOverflow(e)
	}
}

// Peek returns the worst retained element.
func (b *Bounded[E]) Peek() (E, bool) {
	if n := len(b.ties); n > 0 {
		return b.ties[n-1], true
	}
	return b.heap.Peek()
}

// Poll removes and returns the worst retained element.
func (b *Bounded[E]) Poll() (E, bool) {
	if n := len(b.ties); n > 0 {
		e := b.ties[n-1]
		var zero E
		b.ties[n-1] = zero
		b.ties = b.ties[:n-1]
		return e, true
	}
	return b.heap.Poll()
}

// Len returns the number of retained elements, ties included.
func (b *Bounded[E]) Len() int { return b.heap.Len() + len(b.ties) }

// IsEmpty reports whether nothing is retained.
func (b *Bounded[E]) IsEmpty() bool { return b.Len() == 0 }

// Ties returns the number of elements retained beyond MaxSize.
func (b *Bounded[E]) Ties() int { return len(b.ties) }

// MaxSize returns the bound.
func (b *Bounded[E]) MaxSize() int { return b.maxSize }

// Policy returns the overflow policy.
func (b *Bounded[E]) Policy() OverflowPolicy { return b.policy }

// Clear removes all elements, ties included.
func (b *Bounded[E]) Clear() {
	b.heap.Clear()
	clear(b.ties)
	b.ties = b.ties[:0]
}

// All iterates over the retained elements in no particular order.
func (b *Bounded[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range b.heap.All() {
			if !yield(e) {
				return
			}
		}
		for _, e := range b.ties {
			if !yield(e) {
				return
			}
		}
	}
}

// ToSortedList drains the heap and returns the retained elements best first.
func (b *Bounded[E]) ToSortedList() []E {
	out := make([]E, 0, b.Len())
	for {
		e, ok := b.Poll()
		if !ok {
			break
		}
		out = append(out, e)
	}
	slices.Reverse(out)
	return out
}
