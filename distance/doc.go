// Package distance defines the distance boundary of the kernel and provides
// vector metrics backed by gonum.
//
// The kernel never computes distances itself: callers supply a Query that
// measures two records by id. Two capabilities exist, selected statically
// per query type:
//
//   - Query[D]: a generic ordered distance value (int, float32, ...)
//   - DoubleQuery: the primitive float64 fast path used by knn.DoubleLinearScan
//
// # Supported Metrics
//
//   - Euclidean: L2 distance (default)
//   - SquaredEuclidean: squared L2, same ordering as Euclidean
//   - Manhattan: L1 distance
//   - Chebyshev: L-infinity distance
//   - Cosine: 1 - cosine similarity
//
// # Usage
//
//	q, err := distance.NewVectorQuery(rel, distance.Euclidean)
//	d := q.DoubleDistance(a, b)
package distance
