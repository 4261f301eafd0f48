package knnkit

import (
	"cmp"
	"context"
	"time"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/distance"
	"github.com/hupe1980/knnkit/internal/resource"
	"github.com/hupe1980/knnkit/knn"
	"github.com/hupe1980/knnkit/relation"
)

// Kernel is the retrieval context: it owns the id factory shared by all
// relations loaded through it, the id budget and the worker pool used by
// batch searches.
//
// A Kernel is safe for concurrent use.
type Kernel struct {
	factory *dbid.Factory
	rc      *resource.Controller
	metrics MetricsCollector
	logger  *Logger

	checkInterval int
}

// New creates a Kernel.
func New(optFns ...Option) *Kernel {
	opts := applyOptions(optFns)
	rc := resource.NewController(resource.Config{
		MaxIDs:     opts.maxIDs,
		MaxWorkers: opts.workers,
	})

	return &Kernel{
		factory: dbid.NewFactory(
			dbid.WithLogger(opts.logger.Logger),
			dbid.WithResourceController(rc),
		),
		rc:            rc,
		metrics:       opts.metricsCollector,
		logger:        opts.logger,
		checkInterval: opts.checkInterval,
	}
}

// Factory returns the id factory of the kernel.
func (k *Kernel) Factory() *dbid.Factory { return k.factory }

// LiveIDs returns the number of ids currently allocated through the kernel.
func (k *Kernel) LiveIDs() int64 { return k.rc.LiveIDs() }

// LoadVectors copies data into a new relation. Every row gets an id from the
// kernel's factory.
func (k *Kernel) LoadVectors(ctx context.Context, data [][]float64) (*relation.Vectors, error) {
	rel, err := relation.NewVectors(k.factory, data)
	err = translateError(err)

	dim := 0
	if len(data) > 0 {
		dim = len(data[0])
	}
	k.metrics.RecordAllocation(len(data), err)
	k.logger.LogAllocation(ctx, len(data), dim, err)
	return rel, err
}

// Release closes rel and returns its ids to the factory.
func (k *Kernel) Release(ctx context.Context, rel *relation.Vectors) error {
	n := rel.Len()
	err := translateError(rel.Close())
	k.metrics.RecordRelease(n, err)
	k.logger.LogRelease(ctx, n, err)
	return err
}

// Search returns the k nearest rows of rel to the row query, including every
// row that ties with the k-th distance. The query row itself is a candidate
// unless knn.WithExcludeQuery is passed.
func (k *Kernel) Search(ctx context.Context, rel *relation.Vectors, metric distance.Metric, query dbid.IDRef, kk int, opts ...knn.ScanOption) (*knn.List[float64], error) {
	start := time.Now()
	list, err := k.search(ctx, rel, metric, query, kk, opts)
	err = translateError(err)

	k.metrics.RecordSearch(kk, time.Since(start), err)
	k.logger.WithMetric(metric.String()).LogSearch(ctx, kk, listLen(list), err)
	return list, err
}

func (k *Kernel) search(ctx context.Context, rel *relation.Vectors, metric distance.Metric, query dbid.IDRef, kk int, opts []knn.ScanOption) (*knn.List[float64], error) {
	if _, err := rel.Vector(query); err != nil {
		return nil, err
	}
	q, err := k.query(rel, metric)
	if err != nil {
		return nil, err
	}
	return knn.NewDoubleLinearScan(rel.IDs(), q, k.scanOptions(opts)...).KNN(ctx, query, kk)
}

// SearchVector is Search for a query vector that is not part of rel.
func (k *Kernel) SearchVector(ctx context.Context, rel *relation.Vectors, metric distance.Metric, vec []float64, kk int) (*knn.List[float64], error) {
	start := time.Now()
	list, err := k.searchVector(ctx, rel, metric, vec, kk)
	err = translateError(err)

	k.metrics.RecordSearch(kk, time.Since(start), err)
	k.logger.WithMetric(metric.String()).LogSearch(ctx, kk, listLen(list), err)
	return list, err
}

func (k *Kernel) searchVector(ctx context.Context, rel *relation.Vectors, metric distance.Metric, vec []float64, kk int) (*knn.List[float64], error) {
	if rel.Len() > 0 && len(vec) != rel.Dim() {
		return nil, &ErrDimensionMismatch{Expected: rel.Dim(), Actual: len(vec)}
	}
	q, err := k.query(rel, metric)
	if err != nil {
		return nil, err
	}
	// The invalid zero id never matches a row.
	return knn.NewDoubleLinearScan(rel.IDs(), q.ToVector(vec), k.scanOptions(nil)...).KNN(ctx, dbid.ObjectID{}, kk)
}

// RangeSearch returns every row of rel within radius of the row query,
// nearest first.
func (k *Kernel) RangeSearch(ctx context.Context, rel *relation.Vectors, metric distance.Metric, query dbid.IDRef, radius float64, opts ...knn.ScanOption) (*knn.DistanceList[float64], error) {
	start := time.Now()
	res, err := k.rangeSearch(ctx, rel, metric, query, radius, opts)
	err = translateError(err)

	n := 0
	if res != nil {
		n = res.Len()
	}
	k.metrics.RecordRangeSearch(n, time.Since(start), err)
	k.logger.WithMetric(metric.String()).LogRangeSearch(ctx, radius, n, err)
	return res, err
}

func (k *Kernel) rangeSearch(ctx context.Context, rel *relation.Vectors, metric distance.Metric, query dbid.IDRef, radius float64, opts []knn.ScanOption) (*knn.DistanceList[float64], error) {
	if _, err := rel.Vector(query); err != nil {
		return nil, err
	}
	q, err := k.query(rel, metric)
	if err != nil {
		return nil, err
	}
	return knn.NewDoubleLinearScan(rel.IDs(), q, k.scanOptions(opts)...).Range(ctx, query, radius)
}

// BatchSearch runs Search for every id of queries on the kernel's worker
// pool. Results are in query order.
func (k *Kernel) BatchSearch(ctx context.Context, rel *relation.Vectors, metric distance.Metric, queries dbid.IDs, kk int, opts ...knn.ScanOption) ([]*knn.List[float64], error) {
	start := time.Now()
	lists, err := k.batchSearch(ctx, rel, metric, queries, kk, opts)
	err = translateError(err)

	k.metrics.RecordBatchSearch(queries.Len(), time.Since(start), err)
	k.logger.WithMetric(metric.String()).LogBatchSearch(ctx, queries.Len(), kk, err)
	return lists, err
}

func (k *Kernel) batchSearch(ctx context.Context, rel *relation.Vectors, metric distance.Metric, queries dbid.IDs, kk int, opts []knn.ScanOption) ([]*knn.List[float64], error) {
	for id := range queries.All() {
		if _, err := rel.Vector(id); err != nil {
			return nil, err
		}
	}
	q, err := k.query(rel, metric)
	if err != nil {
		return nil, err
	}
	s := knn.NewDoubleLinearScan(rel.IDs(), q, k.scanOptions(opts)...)
	return knn.BatchKNN[float64](ctx, gatedSearcher[float64]{s: s, rc: k.rc}, queries, kk, k.rc.MaxWorkers())
}

// SearchWith runs an exhaustive kNN search over ids with an arbitrary
// distance type. sentinel is the k-distance reported while fewer than k
// candidates exist.
func SearchWith[D cmp.Ordered](ctx context.Context, k *Kernel, ids dbid.IDs, dist distance.Query[D], query dbid.IDRef, kk int, sentinel D, opts ...knn.ScanOption) (*knn.List[D], error) {
	start := time.Now()
	s := gatedSearcher[D]{
		s:  knn.NewLinearScan(ids, dist, sentinel, k.scanOptions(opts)...),
		rc: k.rc,
	}
	list, err := s.KNN(ctx, query, kk)
	err = translateError(err)

	n := 0
	if list != nil {
		n = list.Len()
	}
	k.metrics.RecordSearch(kk, time.Since(start), err)
	k.logger.LogSearch(ctx, kk, n, err)
	return list, err
}

func (k *Kernel) query(rel *relation.Vectors, metric distance.Metric) (*distance.VectorQuery, error) {
	q, err := distance.NewVectorQuery(rel, metric)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: metric, cause: err}
	}
	return q, nil
}

func (k *Kernel) scanOptions(opts []knn.ScanOption) []knn.ScanOption {
	return append([]knn.ScanOption{knn.WithCheckInterval(k.checkInterval)}, opts...)
}

func listLen(l *knn.List[float64]) int {
	if l == nil {
		return 0
	}
	return l.Len()
}

// gatedSearcher holds a worker slot of the kernel for the duration of each query.
type gatedSearcher[D cmp.Ordered] struct {
	s  knn.Searcher[D]
	rc *resource.Controller
}

func (g gatedSearcher[D]) KNN(ctx context.Context, query dbid.IDRef, k int) (*knn.List[D], error) {
	if err := g.rc.AcquireWorker(ctx); err != nil {
		return nil, err
	}
	defer g.rc.ReleaseWorker()
	return g.s.KNN(ctx, query, k)
}
