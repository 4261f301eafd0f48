package dbid

import (
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// DefaultSampleSwapThreshold is the sample fraction at which RandomSample
// switches from draw-and-retry to swap-and-pop eviction. 0.5 is a tunable
// heuristic, not a proven optimum.
const DefaultSampleSwapThreshold = 0.5

// RandomSample draws k distinct ids from source.
//
// source is assumed to be duplicate-free. k must lie in [0, source.Len()].
func RandomSample(source IDs, k int, seed int64) (HashSetModifiableIDs, error) {
	return RandomSampleWithThreshold(source, k, seed, DefaultSampleSwapThreshold)
}

// RandomSampleWithThreshold is RandomSample with an explicit strategy
// threshold. For k < threshold*|source| positions are drawn with replacement
// until k distinct positions are hit; otherwise a copy of source is shrunk by
// evicting uniformly chosen elements until k remain.
func RandomSampleWithThreshold(source IDs, k int, seed int64, threshold float64) (HashSetModifiableIDs, error) {
	n := source.Len()
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: sample size %d outside [0, %d]", ErrInvalidArgument, k, n)
	}

	rng := rand.New(rand.NewSource(seed))

	if float64(k) < threshold*float64(n) {
		arr := EnsureArray(source)
		drawn := bitset.New(uint(n))
		out := newHashSet()
		for hits := 0; hits < k; {
			pos := rng.Intn(n)
			if drawn.Test(uint(pos)) {
				continue
			}
			drawn.Set(uint(pos))
			hits++
			id, err := arr.Get(pos)
			if err != nil {
				return nil, err
			}
			out.Add(id)
		}
		return out, nil
	}

	pool := newArrayFrom(source).idSlice
	for len(pool) > k {
		last := len(pool) - 1
		i := rng.Intn(len(pool))
		pool[i] = pool[last]
		pool = pool[:last]
	}
	out := newHashSet()
	for _, id := range pool {
		out.Add(id)
	}
	return out, nil
}

// Shuffle permutes ids in place.
func Shuffle(ids ArrayModifiableIDs, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(ids.Len(), func(i, j int) {
		_ = ids.Swap(i, j)
	})
}

// RandomSplit partitions a shuffled copy of ids into parts arrays whose sizes
// differ by at most one.
func RandomSplit(ids IDs, parts int, seed int64) ([]ArrayModifiableIDs, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: %d parts", ErrInvalidArgument, parts)
	}

	all := newArrayFrom(ids)
	Shuffle(all, seed)

	n := all.Len()
	out := make([]ArrayModifiableIDs, parts)
	begin := 0
	for p := range parts {
		end := begin + n/parts
		if p < n%parts {
			end++
		}
		out[p] = &arrayIDs{idSlice: append(idSlice(nil), all.idSlice[begin:end]...)}
		begin = end
	}
	return out, nil
}
