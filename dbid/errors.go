package dbid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an argument is invalid (e.g. negative size, k > |source|).
	ErrInvalidArgument = errors.New("dbid: invalid argument")

	// ErrInvalidState is returned when an id is used outside its allocation lifetime
	// (stale, already freed, or never allocated by this factory).
	ErrInvalidState = errors.New("dbid: invalid state")

	// ErrIndexOutOfRange is returned by positional access beyond a collection's bounds.
	ErrIndexOutOfRange = errors.New("dbid: index out of range")

	// ErrNotFound is returned when an id is not a member of the collection.
	ErrNotFound = errors.New("dbid: id not found")

	// ErrCapacityExceeded is returned when the factory cannot hand out more ids.
	ErrCapacityExceeded = errors.New("dbid: capacity exceeded")
)

// IndexError reports a positional access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dbid: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}
	return nil
}

func checkSlice(begin, end, n int) error {
	if begin < 0 || end > n || begin > end {
		return fmt.Errorf("%w: slice [%d:%d] of length %d", ErrIndexOutOfRange, begin, end, n)
	}
	return nil
}
