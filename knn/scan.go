package knn

import (
	"cmp"
	"context"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/distance"
)

// DefaultCheckInterval is the number of candidates scanned between context checks.
const DefaultCheckInterval = 1024

// Searcher answers kNN queries.
type Searcher[D cmp.Ordered] interface {
	KNN(ctx context.Context, query dbid.IDRef, k int) (*List[D], error)
}

// ScanOption configures a linear scan.
type ScanOption func(*scanOptions)

type scanOptions struct {
	excludeQuery  bool
	checkInterval int
}

// WithExcludeQuery skips the query id itself when it is part of the scanned ids.
func WithExcludeQuery() ScanOption {
	return func(o *scanOptions) { o.excludeQuery = true }
}

// WithCheckInterval sets how many candidates are scanned between context
// checks. Non-positive values keep the default.
func WithCheckInterval(n int) ScanOption {
	return func(o *scanOptions) {
		if n > 0 {
			o.checkInterval = n
		}
	}
}

func applyScanOptions(opts []ScanOption) scanOptions {
	o := scanOptions{checkInterval: DefaultCheckInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LinearScan answers queries by measuring every id. It is safe for
// concurrent use when its distance query is.
type LinearScan[D cmp.Ordered] struct {
	ids      dbid.IDs
	dist     distance.Query[D]
	sentinel D
	opts     scanOptions
}

// NewLinearScan creates a scan over ids.
func NewLinearScan[D cmp.Ordered](ids dbid.IDs, dist distance.Query[D], sentinel D, opts ...ScanOption) *LinearScan[D] {
	return &LinearScan[D]{
		ids:      ids,
		dist:     dist,
		sentinel: sentinel,
		opts:     applyScanOptions(opts),
	}
}

// KNN returns the k nearest ids to query, ties at the k-th distance included.
func (s *LinearScan[D]) KNN(ctx context.Context, query dbid.IDRef, k int) (*List[D], error) {
	h, err := NewHeap(k, s.sentinel)
	if err != nil {
		return nil, err
	}
	q := query.ID()

	i := 0
	for id := range s.ids.All() {
		if i%s.opts.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		i++
		if s.opts.excludeQuery && id == q {
			continue
		}
		h.Add(s.dist.Distance(q, id), id)
	}
	return h.ToList(), nil
}

// Range returns every id within radius of query, nearest first.
func (s *LinearScan[D]) Range(ctx context.Context, query dbid.IDRef, radius D) (*DistanceList[D], error) {
	out := NewDistanceList[D](0)
	q := query.ID()

	i := 0
	for id := range s.ids.All() {
		if i%s.opts.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		i++
		if s.opts.excludeQuery && id == q {
			continue
		}
		if d := s.dist.Distance(q, id); cmp.Compare(d, radius) <= 0 {
			out.Add(d, id)
		}
	}
	out.Sort()
	return out, nil
}

// DoubleLinearScan is LinearScan on the float64 fast path. Candidates are
// collected by offset into a DoubleHeap.
type DoubleLinearScan struct {
	ids  dbid.ArrayIDs
	dist distance.DoubleQuery
	opts scanOptions
}

// NewDoubleLinearScan creates a scan over ids.
func NewDoubleLinearScan(ids dbid.IDs, dist distance.DoubleQuery, opts ...ScanOption) *DoubleLinearScan {
	return &DoubleLinearScan{
		ids:  dbid.EnsureArray(ids),
		dist: dist,
		opts: applyScanOptions(opts),
	}
}

// KNN returns the k nearest ids to query, ties at the k-th distance included.
func (s *DoubleLinearScan) KNN(ctx context.Context, query dbid.IDRef, k int) (*List[float64], error) {
	h, err := newPooledDoubleHeap(k)
	if err != nil {
		return nil, err
	}
	defer h.release()
	q := query.ID()

	off := 0
	for id := range s.ids.All() {
		if off%s.opts.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !s.opts.excludeQuery || id != q {
			h.Add(s.dist.DoubleDistance(q, id), off)
		}
		off++
	}
	return h.ToList(s.ids)
}

// Range returns every id within radius of query, nearest first.
func (s *DoubleLinearScan) Range(ctx context.Context, query dbid.IDRef, radius float64) (*DistanceList[float64], error) {
	out := NewDistanceList[float64](0)
	q := query.ID()

	off := 0
	for id := range s.ids.All() {
		if off%s.opts.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		off++
		if s.opts.excludeQuery && id == q {
			continue
		}
		if d := s.dist.DoubleDistance(q, id); d <= radius {
			out.Add(d, id)
		}
	}
	out.Sort()
	return out, nil
}
