package knn

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/knnkit/dbid"
)

// List is an immutable kNN result sorted by ascending distance.
//
// It holds at least k entries whenever at least k candidates were offered,
// and more than k when candidates tie at the k-th distance.
type List[D cmp.Ordered] struct {
	pairs    []dbid.DistancePair[D]
	k        int
	sentinel D
}

// NewList builds a List from pairs, sorting a copy by distance.
func NewList[D cmp.Ordered](k int, sentinel D, pairs []dbid.DistancePair[D]) (*List[D], error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, dbid.CompareDistancePairs[D])
	return &List[D]{pairs: sorted, k: k, sentinel: sentinel}, nil
}

// Len returns the number of entries, ties included.
func (l *List[D]) Len() int { return len(l.pairs) }

// K returns the requested number of neighbors.
func (l *List[D]) K() int { return l.k }

// Get returns the i-th nearest entry.
func (l *List[D]) Get(i int) (dbid.DistancePair[D], error) {
	if i < 0 || i >= len(l.pairs) {
		return dbid.DistancePair[D]{}, &dbid.IndexError{Index: i, Len: len(l.pairs)}
	}
	return l.pairs[i], nil
}

// KnnDistance returns the k-th smallest distance, or the sentinel when the
// list holds fewer than k entries.
func (l *List[D]) KnnDistance() D {
	if len(l.pairs) < l.k {
		return l.sentinel
	}
	return l.pairs[l.k-1].Distance
}

// IDs returns the ids in result order.
func (l *List[D]) IDs() dbid.ArrayIDs {
	ids := make([]dbid.ObjectID, len(l.pairs))
	for i, p := range l.pairs {
		ids[i] = p.ID
	}
	return dbid.StaticArrayOf(ids)
}

// Distances returns the distances in result order.
func (l *List[D]) Distances() []D {
	out := make([]D, len(l.pairs))
	for i, p := range l.pairs {
		out[i] = p.Distance
	}
	return out
}

// Pairs returns a copy of the entries.
func (l *List[D]) Pairs() []dbid.DistancePair[D] {
	return slices.Clone(l.pairs)
}

// All iterates over the entries nearest first.
func (l *List[D]) All() iter.Seq2[int, dbid.DistancePair[D]] {
	return slices.All(l.pairs)
}

// SubList returns the k' nearest entries plus all entries tying with the
// k'-th distance. k' larger than K is allowed but the list may then hold
// fewer than k' entries.
func (l *List[D]) SubList(k int) (*List[D], error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	end := len(l.pairs)
	if k < end {
		boundary := l.pairs[k-1].Distance
		end = k
		for end < len(l.pairs) && cmp.Compare(l.pairs[end].Distance, boundary) == 0 {
			end++
		}
	}
	return &List[D]{pairs: l.pairs[:end:end], k: k, sentinel: l.sentinel}, nil
}

func (l *List[D]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "kNNList[k=%d](", l.k)
	for i, p := range l.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
