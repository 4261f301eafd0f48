package knnkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/knnkit/dbid"
	"github.com/hupe1980/knnkit/distance"
	"github.com/hupe1980/knnkit/knn"
	"github.com/hupe1980/knnkit/relation"
)

var (
	// ErrInvalidK is returned when k is not positive. It wraps ErrInvalidArgument.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)

	// ErrNotFound is returned when an id is not part of the searched relation.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when a stale or released id is used.
	ErrInvalidState = errors.New("invalid state")

	// ErrCapacityExceeded is returned when the id budget is exhausted.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrClosed is returned when a released relation is used.
	ErrClosed = errors.New("relation closed")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidMetric indicates an unsupported distance metric.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric distance.Metric
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %v", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, knn.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	var dm *relation.DimensionMismatchError
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	switch {
	case errors.Is(err, dbid.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, dbid.ErrInvalidState):
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	case errors.Is(err, dbid.ErrCapacityExceeded):
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	case errors.Is(err, relation.ErrClosed):
		return fmt.Errorf("%w: %w", ErrClosed, err)
	case errors.Is(err, dbid.ErrInvalidArgument),
		errors.Is(err, knn.ErrInvalidArgument),
		errors.Is(err, relation.ErrInvalidArgument):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
