package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}

	tests := []struct {
		metric Metric
		want   float64
	}{
		{Euclidean, 5},
		{SquaredEuclidean, 25},
		{Manhattan, 7},
		{Chebyshev, 4},
	}
	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			fn, err := Provider(tt.metric)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fn(a, b), 1e-12)
			assert.InDelta(t, 0, fn(a, a), 1e-12)
		})
	}
}

func TestCosineDistance(t *testing.T) {
	assert.InDelta(t, 0, CosineDistance([]float64{1, 0}, []float64{2, 0}), 1e-12)
	assert.InDelta(t, 1, CosineDistance([]float64{1, 0}, []float64{0, 3}), 1e-12)
	assert.InDelta(t, 2, CosineDistance([]float64{1, 0}, []float64{-1, 0}), 1e-12)
	assert.Equal(t, 1.0, CosineDistance([]float64{0, 0}, []float64{1, 1}))
}

func TestProvider_Unknown(t *testing.T) {
	_, err := Provider(Metric(99))
	assert.ErrorIs(t, err, ErrUnsupportedMetric)
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}

type mapSource map[dbid.ObjectID][]float64

func (m mapSource) Vector(ref dbid.IDRef) ([]float64, error) {
	v, ok := m[ref.ID()]
	if !ok {
		return nil, dbid.ErrNotFound
	}
	return v, nil
}

func TestVectorQuery(t *testing.T) {
	f := dbid.NewFactory()
	r, err := f.NewRange(3)
	require.NoError(t, err)
	a, _ := r.Get(0)
	b, _ := r.Get(1)
	c, _ := r.Get(2)
	src := mapSource{a: {0, 0}, b: {3, 4}, c: {6, 8}}

	q, err := NewVectorQuery(src, Euclidean)
	require.NoError(t, err)
	assert.Equal(t, Euclidean, q.Metric())

	assert.InDelta(t, 5, q.DoubleDistance(a, b), 1e-12)
	assert.InDelta(t, 10, q.Distance(a, c), 1e-12)
	assert.InDelta(t, 5, Generic(q).Distance(b, c), 1e-12)

	toOrigin := q.ToVector([]float64{0, 0})
	assert.InDelta(t, 10, toOrigin.DoubleDistance(dbid.ObjectID{}, c), 1e-12)

	assert.Panics(t, func() { q.DoubleDistance(a, dbid.ObjectID{}) })

	_, err = NewVectorQuery(src, Metric(-1))
	assert.Error(t, err)
}

func TestQueryFuncs(t *testing.T) {
	var q Query[int] = QueryFunc[int](func(a, b dbid.ObjectID) int {
		return int(a.Index()) - int(b.Index())
	})
	var d DoubleQuery = DoubleQueryFunc(func(_, _ dbid.ObjectID) float64 { return math.Pi })

	assert.Equal(t, 0, q.Distance(dbid.ObjectID{}, dbid.ObjectID{}))
	assert.Equal(t, math.Pi, d.DoubleDistance(dbid.ObjectID{}, dbid.ObjectID{}))
	assert.Equal(t, math.Pi, Generic(d).Distance(dbid.ObjectID{}, dbid.ObjectID{}))
}
