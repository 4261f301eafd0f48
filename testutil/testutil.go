package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Neighbor is a ground-truth result: a row index and its distance.
type Neighbor struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63 returns a non-negative pseudo-random int64, suitable as a seed.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillGaussian fills dst with standard normal values.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	data := make([]float64, num*dimensions)
	r.FillUniform(data)
	return split(data, num, dimensions)
}

// GridVectors generates vectors with integer coordinates in [0, levels).
// Distances between them tie frequently.
func (r *RNG) GridVectors(num, dimensions, levels int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	for i := range data {
		data[i] = float64(r.rand.Intn(levels))
	}
	return split(data, num, dimensions)
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
func (r *RNG) UnitVectors(num int, dimensions int) [][]float64 {
	data := make([]float64, num*dimensions)
	r.FillGaussian(data)

	vectors := split(data, num, dimensions)
	for _, vec := range vectors {
		norm := floats.Norm(vec, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, vec)
	}
	return vectors
}

// ClusteredVectors generates vectors clustered around random unit centroids.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UnitVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := split(data, num, dim)
	for i, vec := range vectors {
		centroid := centroids[i%clusters]
		for j := range vec {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
	}
	return vectors
}

func split(data []float64, num, dim int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range num {
		vectors[i] = data[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return vectors
}

// ExactKNN returns the k nearest rows of dataset to query, plus every row
// tying with the k-th distance, sorted by distance then index.
func ExactKNN(query []float64, dataset [][]float64, k int, dist func(a, b []float64) float64) []Neighbor {
	all := make([]Neighbor, len(dataset))
	for i, vec := range dataset {
		all[i] = Neighbor{Index: i, Distance: dist(query, vec)}
	}
	slices.SortStableFunc(all, func(a, b Neighbor) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	if k <= 0 || len(all) <= k {
		return all
	}
	end := k
	for end < len(all) && all[end].Distance == all[k-1].Distance {
		end++
	}
	return all[:end]
}

// Distances extracts the distances of ns.
func Distances(ns []Neighbor) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = n.Distance
	}
	return out
}

// ComputeRecall returns the fraction of ground-truth indices present in got.
func ComputeRecall(groundTruth []Neighbor, got []int) float64 {
	if len(groundTruth) == 0 {
		if len(got) == 0 {
			return 1.0
		}
		return 0.0
	}

	truth := make(map[int]struct{}, len(groundTruth))
	for _, n := range groundTruth {
		truth[n.Index] = struct{}{}
	}

	hits := 0
	for _, idx := range got {
		if _, ok := truth[idx]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(groundTruth))
}
