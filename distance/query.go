package distance

import (
	"fmt"

	"github.com/hupe1980/knnkit/dbid"
)

// VectorSource resolves a record id to its vector.
type VectorSource interface {
	Vector(ref dbid.IDRef) ([]float64, error)
}

// VectorQuery evaluates a metric over the vectors of a VectorSource.
// It implements both Query[float64] and DoubleQuery.
type VectorQuery struct {
	src    VectorSource
	metric Metric
	fn     Func
}

// NewVectorQuery binds metric to src.
func NewVectorQuery(src VectorSource, metric Metric) (*VectorQuery, error) {
	fn, err := Provider(metric)
	if err != nil {
		return nil, err
	}
	return &VectorQuery{src: src, metric: metric, fn: fn}, nil
}

// Metric returns the bound metric.
func (q *VectorQuery) Metric() Metric { return q.metric }

// DoubleDistance returns the distance between the vectors of a and b.
// It panics if either id is not part of the source; callers validate
// query ids before scanning.
func (q *VectorQuery) DoubleDistance(a, b dbid.ObjectID) float64 {
	return q.fn(q.mustVector(a), q.mustVector(b))
}

// Distance implements Query[float64].
func (q *VectorQuery) Distance(a, b dbid.ObjectID) float64 {
	return q.DoubleDistance(a, b)
}

// ToVector returns a DoubleQuery measuring every record against a fixed
// external vector, ignoring the first argument.
func (q *VectorQuery) ToVector(v []float64) DoubleQuery {
	return DoubleQueryFunc(func(_, b dbid.ObjectID) float64 {
		return q.fn(v, q.mustVector(b))
	})
}

func (q *VectorQuery) mustVector(id dbid.ObjectID) []float64 {
	v, err := q.src.Vector(id)
	if err != nil {
		panic(fmt.Sprintf("distance: %v", err))
	}
	return v
}
