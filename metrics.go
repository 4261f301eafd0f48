package knnkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(k int, duration time.Duration, err error) {
//	    p.searchCounter.Inc()
//	    p.searchHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordSearch is called after each kNN search.
	// k is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordRangeSearch is called after each range search.
	// results is the number of ids within the radius.
	RecordRangeSearch(results int, duration time.Duration, err error)

	// RecordBatchSearch is called after each batch search.
	// queries is the number of queries attempted.
	RecordBatchSearch(queries int, duration time.Duration, err error)

	// RecordAllocation is called after ids are allocated for a relation.
	RecordAllocation(count int, err error)

	// RecordRelease is called after a relation's ids are released.
	RecordRelease(count int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordRangeSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAllocation(int, error)                 {}
func (NoopMetricsCollector) RecordRelease(int, error)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	RangeSearchCount  atomic.Int64
	RangeSearchErrors atomic.Int64
	RangeResults      atomic.Int64
	BatchSearchCount  atomic.Int64
	BatchSearchErrors atomic.Int64
	BatchQueries      atomic.Int64
	AllocatedIDs      atomic.Int64
	AllocationErrors  atomic.Int64
	ReleasedIDs       atomic.Int64
	ReleaseErrors     atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordRangeSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRangeSearch(results int, duration time.Duration, err error) {
	b.RangeSearchCount.Add(1)
	if err != nil {
		b.RangeSearchErrors.Add(1)
		return
	}
	b.RangeResults.Add(int64(results))
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(queries int, duration time.Duration, err error) {
	b.BatchSearchCount.Add(1)
	b.BatchQueries.Add(int64(queries))
	if err != nil {
		b.BatchSearchErrors.Add(1)
	}
}

// RecordAllocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocation(count int, err error) {
	if err != nil {
		b.AllocationErrors.Add(1)
		return
	}
	b.AllocatedIDs.Add(int64(count))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(count int, err error) {
	if err != nil {
		b.ReleaseErrors.Add(1)
		return
	}
	b.ReleasedIDs.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    b.getAvgSearchNanos(),
		RangeSearchCount:  b.RangeSearchCount.Load(),
		RangeSearchErrors: b.RangeSearchErrors.Load(),
		RangeResults:      b.RangeResults.Load(),
		BatchSearchCount:  b.BatchSearchCount.Load(),
		BatchSearchErrors: b.BatchSearchErrors.Load(),
		BatchQueries:      b.BatchQueries.Load(),
		AllocatedIDs:      b.AllocatedIDs.Load(),
		AllocationErrors:  b.AllocationErrors.Load(),
		ReleasedIDs:       b.ReleasedIDs.Load(),
		ReleaseErrors:     b.ReleaseErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	RangeSearchCount  int64
	RangeSearchErrors int64
	RangeResults      int64
	BatchSearchCount  int64
	BatchSearchErrors int64
	BatchQueries      int64
	AllocatedIDs      int64
	AllocationErrors  int64
	ReleasedIDs       int64
	ReleaseErrors     int64
}
