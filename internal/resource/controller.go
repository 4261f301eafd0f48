package resource

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when an id allocation would exceed the budget.
var ErrBudgetExceeded = errors.New("id budget exceeded")

// Config holds resource limits.
type Config struct {
	// MaxIDs is the hard limit for simultaneously live object ids.
	// If 0, no hard limit is enforced (only tracking).
	MaxIDs int64

	// MaxWorkers is the maximum number of concurrent query workers.
	// If 0, defaults to runtime.GOMAXPROCS(0).
	MaxWorkers int64
}

// Controller manages kernel-wide resources (id budget, worker concurrency).
type Controller struct {
	cfg Config

	idSem   *semaphore.Weighted // nil if unlimited
	idsLive atomic.Int64

	workerSem *semaphore.Weighted
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.MaxIDs > 0 {
		c.idSem = semaphore.NewWeighted(cfg.MaxIDs)
	}

	return c
}

// AcquireIDs attempts to reserve n ids from the budget.
// Returns ErrBudgetExceeded if the limit would be exceeded.
// Non-blocking - callers control retry policy.
func (c *Controller) AcquireIDs(n int64) error {
	if c == nil || n <= 0 {
		return nil
	}

	if c.idSem != nil {
		if !c.idSem.TryAcquire(n) {
			return ErrBudgetExceeded
		}
	}

	c.idsLive.Add(n)
	return nil
}

// ReleaseIDs returns n ids to the budget.
func (c *Controller) ReleaseIDs(n int64) {
	if c == nil || n <= 0 {
		return
	}

	if c.idSem != nil {
		c.idSem.Release(n)
	}
	c.idsLive.Add(-n)
}

// LiveIDs returns the number of ids currently reserved.
func (c *Controller) LiveIDs() int64 {
	if c == nil {
		return 0
	}
	return c.idsLive.Load()
}

// MaxIDs returns the configured id budget (0 if unlimited).
func (c *Controller) MaxIDs() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxIDs
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return runtime.GOMAXPROCS(0)
	}
	return int(c.cfg.MaxWorkers)
}

// AcquireWorker reserves a query worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a query worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}
