package knn

import (
	"math"
	"testing"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairsOf(t *testing.T, ids dbid.ArrayIDs, dists ...float64) []dbid.DistancePair[float64] {
	t.Helper()
	out := make([]dbid.DistancePair[float64], len(dists))
	for i, d := range dists {
		out[i] = dbid.NewDistancePair(d, idAt(t, ids, i))
	}
	return out
}

func TestList_SubList(t *testing.T) {
	ids := newIDs(t, 6)
	list, err := NewList(5, math.Inf(1), pairsOf(t, ids, 4, 1, 2, 2, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 2, 2, 3, 4}, list.Distances())
	assert.Equal(t, 3.0, list.KnnDistance())

	sub, err := list.SubList(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 2}, sub.Distances())
	assert.Equal(t, 2, sub.K())
	assert.Equal(t, 2.0, sub.KnnDistance())

	sub, err = list.SubList(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, sub.Distances())

	sub, err = list.SubList(10)
	require.NoError(t, err)
	assert.Equal(t, 6, sub.Len())
	assert.True(t, math.IsInf(sub.KnnDistance(), 1))

	_, err = list.SubList(0)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestList_Accessors(t *testing.T) {
	ids := newIDs(t, 3)
	list, err := NewList(2, math.Inf(1), pairsOf(t, ids, 3, 1, 2))
	require.NoError(t, err)

	_, err = list.Get(3)
	assert.ErrorIs(t, err, dbid.ErrIndexOutOfRange)
	_, err = list.Get(-1)
	assert.ErrorIs(t, err, dbid.ErrIndexOutOfRange)

	n := 0
	for i, p := range list.All() {
		assert.Equal(t, i, n)
		assert.Equal(t, float64(i+1), p.Distance)
		n++
	}
	assert.Equal(t, 3, n)

	assert.Equal(t, idAt(t, ids, 1), idAt(t, list.IDs(), 0))
	assert.Contains(t, list.String(), "kNNList[k=2](1:")

	pairs := list.Pairs()
	pairs[0].Distance = 99
	first, _ := list.Get(0)
	assert.Equal(t, 1.0, first.Distance)

	_, err = NewList(0, 0.0, nil)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestDistanceList(t *testing.T) {
	ids := newIDs(t, 4)
	l := NewDistanceList[int](-1)

	l.Add(3, idAt(t, ids, 0))
	l.Add(1, idAt(t, ids, 1))
	l.Add(3, idAt(t, ids, 2))
	l.Add(2, idAt(t, ids, 3))
	l.Sort()

	assert.Equal(t, 4, l.Len())
	got := l.IDs()
	assert.Equal(t, idAt(t, ids, 1), idAt(t, got, 0))
	assert.Equal(t, idAt(t, ids, 3), idAt(t, got, 1))
	// Equal distances keep insertion order.
	assert.Equal(t, idAt(t, ids, 0), idAt(t, got, 2))
	assert.Equal(t, idAt(t, ids, 2), idAt(t, got, 3))

	p, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Distance)
	_, err = l.Get(4)
	assert.ErrorIs(t, err, dbid.ErrIndexOutOfRange)

	n := 0
	for range l.All() {
		n++
	}
	assert.Equal(t, 4, n)
	assert.Len(t, l.Pairs(), 4)

	l.Clear()
	assert.Zero(t, l.Len())
}
