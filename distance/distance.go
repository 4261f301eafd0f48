package distance

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/knnkit/dbid"
	"gonum.org/v1/gonum/floats"
)

// ErrUnsupportedMetric is returned for an unknown Metric.
var ErrUnsupportedMetric = errors.New("distance: unsupported metric")

// Query measures the distance between two records by id.
type Query[D cmp.Ordered] interface {
	Distance(a, b dbid.ObjectID) D
}

// DoubleQuery is the primitive float64 distance capability.
type DoubleQuery interface {
	DoubleDistance(a, b dbid.ObjectID) float64
}

// QueryFunc adapts a function to Query.
type QueryFunc[D cmp.Ordered] func(a, b dbid.ObjectID) D

// Distance implements Query.
func (f QueryFunc[D]) Distance(a, b dbid.ObjectID) D { return f(a, b) }

// DoubleQueryFunc adapts a function to DoubleQuery.
type DoubleQueryFunc func(a, b dbid.ObjectID) float64

// DoubleDistance implements DoubleQuery.
func (f DoubleQueryFunc) DoubleDistance(a, b dbid.ObjectID) float64 { return f(a, b) }

// Generic exposes a DoubleQuery as a Query[float64].
func Generic(q DoubleQuery) Query[float64] {
	return QueryFunc[float64](q.DoubleDistance)
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	Euclidean Metric = iota
	SquaredEuclidean
	Manhattan
	Chebyshev
	Cosine
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "Euclidean"
	case SquaredEuclidean:
		return "SquaredEuclidean"
	case Manhattan:
		return "Manhattan"
	case Chebyshev:
		return "Chebyshev"
	case Cosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
// Vectors must have the same length (caller's responsibility).
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case Euclidean:
		return EuclideanDistance, nil
	case SquaredEuclidean:
		return SquaredEuclideanDistance, nil
	case Manhattan:
		return ManhattanDistance, nil
	case Chebyshev:
		return ChebyshevDistance, nil
	case Cosine:
		return CosineDistance, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

// EuclideanDistance is the L2 distance.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclideanDistance is the squared L2 distance.
func SquaredEuclideanDistance(a, b []float64) float64 {
	// floats.SubTo would need a scratch buffer per call.
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ManhattanDistance is the L1 distance.
func ManhattanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevDistance is the L-infinity distance.
func ChebyshevDistance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// CosineDistance is 1 minus the cosine similarity. A zero vector is treated as
// orthogonal to everything.
func CosineDistance(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - floats.Dot(a, b)/(na*nb)
}
