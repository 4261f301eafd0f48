package relation

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/knnkit/dbid"
)

var (
	// ErrClosed is returned when a relation is used after Close.
	ErrClosed = errors.New("relation: closed")

	// ErrInvalidArgument is returned for malformed input data.
	ErrInvalidArgument = errors.New("relation: invalid argument")
)

// DimensionMismatchError reports a row whose length differs from the first row.
type DimensionMismatchError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("relation: row %d has dimension %d, expected %d", e.Row, e.Actual, e.Expected)
}

// Vectors is an immutable set of equal-length float64 vectors.
//
// Reads are safe for concurrent use. Close must not race with reads.
type Vectors struct {
	factory *dbid.Factory
	ids     dbid.Range
	data    []float64
	dim     int
	closed  atomic.Bool
}

// NewVectors copies data into a new relation and allocates one id per row.
func NewVectors(f *dbid.Factory, data [][]float64) (*Vectors, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil factory", ErrInvalidArgument)
	}
	dim := 0
	if len(data) > 0 {
		dim = len(data[0])
		if dim == 0 {
			return nil, fmt.Errorf("%w: zero-dimensional rows", ErrInvalidArgument)
		}
	}

	flat := make([]float64, 0, len(data)*dim)
	for i, row := range data {
		if len(row) != dim {
			return nil, &DimensionMismatchError{Row: i, Expected: dim, Actual: len(row)}
		}
		flat = append(flat, row...)
	}

	ids, err := f.NewRange(len(data))
	if err != nil {
		return nil, err
	}

	return &Vectors{
		factory: f,
		ids:     ids,
		data:    flat,
		dim:     dim,
	}, nil
}

// IDs returns the row ids in row order.
func (v *Vectors) IDs() dbid.Range { return v.ids }

// Len returns the number of rows.
func (v *Vectors) Len() int { return v.ids.Len() }

// Dim returns the vector dimension, 0 for an empty relation.
func (v *Vectors) Dim() int { return v.dim }

// Contains reports whether ref identifies a row of this relation.
func (v *Vectors) Contains(ref dbid.IDRef) bool {
	return !v.closed.Load() && v.ids.Contains(ref)
}

// Vector returns the row of ref. The slice aliases internal storage and must
// not be modified.
func (v *Vectors) Vector(ref dbid.IDRef) ([]float64, error) {
	if v.closed.Load() {
		return nil, ErrClosed
	}
	off, err := v.ids.Offset(ref)
	if err != nil {
		return nil, err
	}
	lo := off * v.dim
	return v.data[lo : lo+v.dim : lo+v.dim], nil
}

// Close releases the row ids back to the factory.
func (v *Vectors) Close() error {
	if !v.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	v.data = nil
	return v.factory.DeallocateRange(v.ids)
}
