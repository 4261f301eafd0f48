package knn

import (
	"cmp"
	"context"
	"fmt"
	"runtime"

	"github.com/hupe1980/knnkit/dbid"
	"golang.org/x/sync/errgroup"
)

// BatchKNN runs one KNN per query on up to workers goroutines. Results are
// in query order. The first failing query cancels the rest.
//
// Each query builds its own heap, so s only needs to be safe for concurrent
// reads. workers <= 0 uses GOMAXPROCS.
func BatchKNN[D cmp.Ordered](ctx context.Context, s Searcher[D], queries dbid.IDs, k, workers int) ([]*List[D], error) {
	if err := checkK(k); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*List[D], queries.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	i := 0
	for q := range queries.All() {
		pos := i
		g.Go(func() error {
			l, err := s.KNN(gctx, q, k)
			if err != nil {
				return fmt.Errorf("query %v: %w", q, err)
			}
			results[pos] = l
			return nil
		})
		i++
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
