package knn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed parameters.
	ErrInvalidArgument = errors.New("knn: invalid argument")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)
)

func checkK(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}
