package knn

import (
	"math"
	"testing"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleHeap_TieScenario(t *testing.T) {
	ids := newIDs(t, 5)
	h, err := NewDoubleHeap(2)
	require.NoError(t, err)

	assert.True(t, math.IsInf(h.KnnDistance(), 1))
	for i, d := range []float64{2, 5, 5, 9} {
		if h.WouldAccept(d) {
			h.Insert(d, i+1)
		}
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 5.0, h.KnnDistance())

	list, err := h.ToList(ids)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 5}, list.Distances())
	first, _ := list.Get(0)
	assert.Equal(t, idAt(t, ids, 1), first.ID)
	assert.Zero(t, h.Len())
}

func TestDoubleHeap_TieTransitions(t *testing.T) {
	h, err := NewDoubleHeap(2)
	require.NoError(t, err)

	h.Add(3, 0)
	h.Add(3, 1)
	h.Add(3, 2)
	assert.Equal(t, 3, h.Len())

	h.Add(1, 3)
	assert.Equal(t, 4, h.Len())
	assert.Equal(t, 3.0, h.KnnDistance())

	h.Add(2, 4)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2.0, h.KnnDistance())
	assert.False(t, h.WouldAccept(2.5))
	assert.True(t, h.WouldAccept(2))
}

func TestDoubleHeap_BadOffset(t *testing.T) {
	h, err := NewDoubleHeap(1)
	require.NoError(t, err)

	h.Add(1, 7)
	_, err = h.ToList(dbid.Empty)
	assert.ErrorIs(t, err, dbid.ErrIndexOutOfRange)
	assert.Zero(t, h.Len())
}
