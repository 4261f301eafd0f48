package knnkit

import (
	"log/slog"

	"github.com/hupe1980/knnkit/knn"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxIDs           int64
	workers          int64
	checkInterval    int
}

// Option configures a Kernel.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &knnkit.BasicMetricsCollector{}
//	k := knnkit.New(knnkit.WithMetricsCollector(metrics))
//	// ... use k ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := knnkit.NewJSONLogger(slog.LevelInfo)
//	k := knnkit.New(knnkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxIDs limits the number of simultaneously live ids across all
// relations of the kernel. If n <= 0, the budget is unlimited.
func WithMaxIDs(n int64) Option {
	return func(o *options) {
		o.maxIDs = n
	}
}

// WithWorkers limits the number of queries evaluated concurrently by batch
// searches. If n <= 0, GOMAXPROCS is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = int64(n)
	}
}

// WithCheckInterval sets how many candidates a scan measures between context
// checks. If n <= 0, knn.DefaultCheckInterval is used.
func WithCheckInterval(n int) Option {
	return func(o *options) {
		o.checkInterval = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		checkInterval:    knn.DefaultCheckInterval,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
