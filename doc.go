// Package knnkit is an exact nearest-neighbor retrieval kernel.
//
// It combines four layers:
//
//   - dbid: generation-checked object ids and id collections
//   - heap: ordered heaps, bounded heaps with tie retention and updatable heaps
//   - knn: kNN heaps, result lists and exhaustive linear scans
//   - distance and relation: the distance boundary and an in-memory vector dataset
//
// A Kernel wires them together with a shared id factory, an id budget,
// a worker pool for batch queries, structured logging and metrics.
//
// # Quick Start
//
//	k := knnkit.New()
//	rel, _ := k.LoadVectors(ctx, [][]float64{{0, 0}, {2, 0}, {3, 4}})
//	q, _ := rel.IDs().Get(0)
//	list, _ := k.Search(ctx, rel, distance.Euclidean, q, 2)
//	for _, p := range list.All() {
//	    fmt.Println(p.ID, p.Distance)
//	}
//
// # Ties
//
// A kNN result holds every candidate whose distance ties with the k-th
// smallest, so it may be longer than k. Use List.SubList to narrow a result
// to a smaller k with the same semantics.
//
// # Custom distances
//
// SearchWith accepts any distance.Query over any ordered distance type:
//
//	hamming := distance.QueryFunc[int](func(a, b dbid.ObjectID) int { ... })
//	list, _ := knnkit.SearchWith(ctx, k, ids, hamming, q, 5, math.MaxInt)
package knnkit
