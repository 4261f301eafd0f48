package knnkit_test

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/knnkit"
	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/distance"
	"github.com/hupe1980/knnkit/knn"
)

// Example_search demonstrates that ties at the k-th distance are kept.
func Example_search() {
	ctx := context.Background()
	k := knnkit.New()

	rel, err := k.LoadVectors(ctx, [][]float64{{0, 0}, {2, 0}, {3, 4}, {0, 5}, {9, 0}})
	if err != nil {
		log.Fatal(err)
	}
	defer k.Release(ctx, rel)

	query, _ := rel.IDs().Get(0)
	list, err := k.Search(ctx, rel, distance.Euclidean, query, 2, knn.WithExcludeQuery())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(list.Len(), list.Distances())
	// Output: 3 [2 5 5]
}

// Example_rangeSearch demonstrates a radius query.
func Example_rangeSearch() {
	ctx := context.Background()
	k := knnkit.New()

	rel, _ := k.LoadVectors(ctx, [][]float64{{0}, {1}, {2}, {3}})
	query, _ := rel.IDs().Get(0)

	res, err := k.RangeSearch(ctx, rel, distance.Manhattan, query, 2)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range res.All() {
		fmt.Println(p.Distance)
	}
	// Output:
	// 0
	// 1
	// 2
}

// Example_searchWith demonstrates a custom integer distance.
func Example_searchWith() {
	ctx := context.Background()
	k := knnkit.New()

	ids, _ := k.Factory().NewRange(8)
	xor := distance.QueryFunc[int](func(a, b dbid.ObjectID) int {
		return int(a.Index()^b.Index()) & 0b11
	})

	query, _ := ids.Get(0)
	list, err := knnkit.SearchWith(ctx, k, ids, xor, query, 1, math.MaxInt)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(list.Len(), list.KnnDistance())
	// Output: 2 0
}

// Example_metrics demonstrates collecting metrics.
func Example_metrics() {
	ctx := context.Background()
	metrics := &knnkit.BasicMetricsCollector{}
	k := knnkit.New(knnkit.WithMetricsCollector(metrics))

	rel, _ := k.LoadVectors(ctx, [][]float64{{0}, {1}})
	query, _ := rel.IDs().Get(0)
	_, _ = k.Search(ctx, rel, distance.Euclidean, query, 1)
	_, _ = k.Search(ctx, rel, distance.Euclidean, query, 0)

	stats := metrics.GetStats()
	fmt.Println(stats.AllocatedIDs, stats.SearchCount, stats.SearchErrors)
	// Output: 2 2 1
}
