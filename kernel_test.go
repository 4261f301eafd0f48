package knnkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/distance"
	"github.com/hupe1980/knnkit/knn"
	"github.com/hupe1980/knnkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, ids dbid.ArrayIDs, i int) dbid.ObjectID {
	t.Helper()
	id, err := ids.Get(i)
	require.NoError(t, err)
	return id
}

func TestKernel_SearchMatchesExact(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	data := rng.GridVectors(400, 4, 3)

	k := New(WithCheckInterval(64))
	rel, err := k.LoadVectors(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, int64(400), k.LiveIDs())

	for _, metric := range []distance.Metric{distance.Euclidean, distance.Manhattan, distance.Chebyshev} {
		fn, err := distance.Provider(metric)
		require.NoError(t, err)

		for _, kk := range []int{1, 3, 10} {
			qi := rng.Intn(len(data))
			want := testutil.ExactKNN(data[qi], data, kk, fn)

			list, err := k.Search(ctx, rel, metric, mustID(t, rel.IDs(), qi), kk)
			require.NoError(t, err)
			assert.Equal(t, testutil.Distances(want), list.Distances(), "%v k=%d", metric, kk)
			assert.GreaterOrEqual(t, list.Len(), kk)

			byVec, err := k.SearchVector(ctx, rel, metric, data[qi], kk)
			require.NoError(t, err)
			assert.Equal(t, list.Distances(), byVec.Distances())
		}
	}
}

func TestKernel_BatchSearch(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(1)
	metrics := &BasicMetricsCollector{}
	k := New(WithWorkers(2), WithMetricsCollector(metrics))

	rel, err := k.LoadVectors(ctx, rng.ClusteredVectors(150, 8, 4, 0.2))
	require.NoError(t, err)

	queries, err := rel.IDs().Slice(10, 40)
	require.NoError(t, err)

	lists, err := k.BatchSearch(ctx, rel, distance.SquaredEuclidean, queries, 5, knn.WithExcludeQuery())
	require.NoError(t, err)
	require.Len(t, lists, 30)

	for i, list := range lists {
		want, err := k.Search(ctx, rel, distance.SquaredEuclidean, mustID(t, queries, i), 5, knn.WithExcludeQuery())
		require.NoError(t, err)
		assert.Equal(t, want.Distances(), list.Distances())
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BatchSearchCount)
	assert.Equal(t, int64(30), stats.BatchQueries)
	assert.Equal(t, int64(30), stats.SearchCount)
}

func TestKernel_RangeSearch(t *testing.T) {
	ctx := context.Background()
	k := New()
	rel, err := k.LoadVectors(ctx, [][]float64{{0, 0}, {1, 0}, {0, 3}, {1, 1}})
	require.NoError(t, err)

	res, err := k.RangeSearch(ctx, rel, distance.Euclidean, mustID(t, rel.IDs(), 0), 1.5, knn.WithExcludeQuery())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	first, _ := res.Get(0)
	assert.Equal(t, mustID(t, rel.IDs(), 1), first.ID)
}

func TestKernel_SearchWith(t *testing.T) {
	ctx := context.Background()
	k := New()
	ids, err := k.Factory().NewRange(10)
	require.NoError(t, err)

	dist := distance.QueryFunc[uint32](func(a, b dbid.ObjectID) uint32 {
		if a.Index() > b.Index() {
			return a.Index() - b.Index()
		}
		return b.Index() - a.Index()
	})

	list, err := SearchWith[uint32](ctx, k, ids, dist, mustID(t, ids, 5), 3, math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 1}, list.Distances())

	_, err = SearchWith[uint32](ctx, k, ids, dist, mustID(t, ids, 5), -1, math.MaxUint32)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestKernel_Errors(t *testing.T) {
	ctx := context.Background()
	k := New(WithMaxIDs(5))

	rel, err := k.LoadVectors(ctx, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	q := mustID(t, rel.IDs(), 0)

	t.Run("invalid k", func(t *testing.T) {
		_, err := k.Search(ctx, rel, distance.Euclidean, q, 0)
		assert.ErrorIs(t, err, ErrInvalidK)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = k.BatchSearch(ctx, rel, distance.Euclidean, rel.IDs(), 0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("invalid metric", func(t *testing.T) {
		_, err := k.Search(ctx, rel, distance.Metric(42), q, 1)
		var im *ErrInvalidMetric
		require.ErrorAs(t, err, &im)
		assert.Equal(t, distance.Metric(42), im.Metric)
		assert.ErrorIs(t, err, distance.ErrUnsupportedMetric)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := k.SearchVector(ctx, rel, distance.Euclidean, []float64{1}, 1)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 1, dm.Actual)

		_, err = k.LoadVectors(ctx, [][]float64{{1}, {1, 2}})
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.Expected)
	})

	t.Run("foreign query", func(t *testing.T) {
		other, err := k.LoadVectors(ctx, [][]float64{{0, 0}})
		require.NoError(t, err)
		defer k.Release(ctx, other)

		_, err = k.Search(ctx, rel, distance.Euclidean, mustID(t, other.IDs(), 0), 1)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = k.BatchSearch(ctx, rel, distance.Euclidean, other.IDs(), 1)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = k.RangeSearch(ctx, rel, distance.Euclidean, mustID(t, other.IDs(), 0), 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("budget", func(t *testing.T) {
		_, err := k.LoadVectors(ctx, [][]float64{{1}, {2}, {3}, {4}})
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, int64(2), k.LiveIDs())
	})

	t.Run("canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := k.Search(cctx, rel, distance.Euclidean, q, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("released", func(t *testing.T) {
		require.NoError(t, k.Release(ctx, rel))
		assert.Zero(t, k.LiveIDs())

		_, err := k.Search(ctx, rel, distance.Euclidean, q, 1)
		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, k.Release(ctx, rel), ErrClosed)

		assert.ErrorIs(t, k.Factory().DeallocateSingle(q), dbid.ErrInvalidState)
	})
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))

	tests := []struct {
		in   error
		want error
	}{
		{knn.ErrInvalidK, ErrInvalidK},
		{dbid.ErrNotFound, ErrNotFound},
		{dbid.ErrInvalidState, ErrInvalidState},
		{dbid.ErrCapacityExceeded, ErrCapacityExceeded},
		{dbid.ErrInvalidArgument, ErrInvalidArgument},
		{knn.ErrInvalidArgument, ErrInvalidArgument},
	}
	for _, tt := range tests {
		got := translateError(tt.in)
		assert.ErrorIs(t, got, tt.want)
		assert.ErrorIs(t, got, tt.in)
	}

	// An invalid k is also an argument error.
	got := translateError(fmt.Errorf("scan: %w", knn.ErrInvalidK))
	assert.ErrorIs(t, got, ErrInvalidK)
	assert.ErrorIs(t, got, ErrInvalidArgument)
}

func TestKernel_Logging(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	k := New(WithLogger(logger))

	rel, err := k.LoadVectors(ctx, [][]float64{{0}, {1}})
	require.NoError(t, err)
	_, err = k.Search(ctx, rel, distance.Euclidean, mustID(t, rel.IDs(), 0), 1)
	require.NoError(t, err)
	_, err = k.Search(ctx, rel, distance.Euclidean, mustID(t, rel.IDs(), 0), 0)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"relation loaded"`)
	assert.Contains(t, out, `"msg":"allocated id range"`)
	assert.Contains(t, out, `"msg":"search completed"`)
	assert.Contains(t, out, `"msg":"search failed"`)
	assert.Contains(t, out, `"metric":"Euclidean"`)
}

func TestOptions_NilFallbacks(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil), WithMetricsCollector(nil), nil})
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.Equal(t, knn.DefaultCheckInterval, o.checkInterval)

	o = applyOptions([]Option{WithLogLevel(slog.LevelWarn), WithWorkers(3), WithMaxIDs(9)})
	assert.Equal(t, int64(3), o.workers)
	assert.Equal(t, int64(9), o.maxIDs)
	assert.True(t, o.logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, o.logger.Enabled(context.Background(), slog.LevelInfo))
}
