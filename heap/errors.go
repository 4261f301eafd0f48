package heap

import "errors"

var (
	// ErrInvalidArgument is returned for invalid sizes or unknown keys.
	ErrInvalidArgument = errors.New("heap: invalid argument")

	// ErrNotFound is returned when a key was never inserted into an Updatable heap.
	ErrNotFound = errors.New("heap: key not found")
)
