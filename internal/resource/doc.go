// Package resource implements the Controller for kernel-wide limits.
//
// The Controller manages two resource types:
//
//   - IDs: an optional budget on the number of live object ids a factory may
//     hand out (non-blocking, fail-fast)
//   - Workers: the number of goroutines a batch query may run at once
//
// # Architecture
//
//	┌───────────────────────────────────────────┐
//	│                Controller                 │
//	├─────────────────────┬─────────────────────┤
//	│  ID Budget          │  Query Workers      │
//	│  (fail-fast)        │  (semaphore)        │
//	├─────────────────────┼─────────────────────┤
//	│  AcquireIDs         │  AcquireWorker      │
//	│  ReleaseIDs         │  TryAcquireWorker   │
//	│  LiveIDs            │  ReleaseWorker      │
//	└─────────────────────┴─────────────────────┘
//
// # ID Budget
//
// The budget uses a weighted semaphore for the hard limit and an atomic
// counter for usage tracking. AcquireIDs never blocks; it returns
// ErrBudgetExceeded when the request does not fit:
//
//	rc := resource.NewController(resource.Config{MaxIDs: 1 << 20})
//	if err := rc.AcquireIDs(n); err != nil {
//	    return err
//	}
//	defer rc.ReleaseIDs(n)
//
// # Nil Safety
//
// All methods are safe to call on a nil *Controller and behave as unlimited.
package resource
