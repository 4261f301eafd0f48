package knn

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hupe1980/knnkit/dbid"
)

// DistanceList is an unbounded, modifiable list of (distance, id) pairs, as
// produced by range queries.
type DistanceList[D cmp.Ordered] struct {
	pairs []dbid.DistancePair[D]
}

// NewDistanceList creates an empty list with capacity hint.
func NewDistanceList[D cmp.Ordered](hint int) *DistanceList[D] {
	return &DistanceList[D]{pairs: make([]dbid.DistancePair[D], 0, max(hint, 0))}
}

// Add appends a pair.
func (l *DistanceList[D]) Add(d D, ref dbid.IDRef) {
	l.pairs = append(l.pairs, dbid.NewDistancePair(d, ref))
}

// Len returns the number of pairs.
func (l *DistanceList[D]) Len() int { return len(l.pairs) }

// Get returns the i-th pair.
func (l *DistanceList[D]) Get(i int) (dbid.DistancePair[D], error) {
	if i < 0 || i >= len(l.pairs) {
		return dbid.DistancePair[D]{}, &dbid.IndexError{Index: i, Len: len(l.pairs)}
	}
	return l.pairs[i], nil
}

// Sort orders the pairs by ascending distance, keeping insertion order among
// equal distances.
func (l *DistanceList[D]) Sort() {
	slices.SortStableFunc(l.pairs, dbid.CompareDistancePairs[D])
}

// IDs returns the ids in list order.
func (l *DistanceList[D]) IDs() dbid.ArrayIDs {
	ids := make([]dbid.ObjectID, len(l.pairs))
	for i, p := range l.pairs {
		ids[i] = p.ID
	}
	return dbid.StaticArrayOf(ids)
}

// All iterates over the pairs in list order.
func (l *DistanceList[D]) All() iter.Seq2[int, dbid.DistancePair[D]] {
	return slices.All(l.pairs)
}

// Pairs returns a copy of the pairs.
func (l *DistanceList[D]) Pairs() []dbid.DistancePair[D] {
	return slices.Clone(l.pairs)
}

// Clear removes all pairs.
func (l *DistanceList[D]) Clear() {
	clear(l.pairs)
	l.pairs = l.pairs[:0]
}
