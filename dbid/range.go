package dbid

import (
	"fmt"
	"iter"
)

// rangeIDs is the ids [base, base+n) of one generation, stored without
// materializing each id.
type rangeIDs struct {
	base uint32
	n    int
	gen  uint32
}

func (rangeIDs) isStatic() {}

func (r rangeIDs) Len() int      { return r.n }
func (r rangeIDs) IsEmpty() bool { return r.n == 0 }

func (r rangeIDs) Contains(ref IDRef) bool {
	_, err := r.Offset(ref)
	return err == nil
}

func (r rangeIDs) Get(i int) (ObjectID, error) {
	if err := checkIndex(i, r.n); err != nil {
		return ObjectID{}, err
	}
	return r.at(i), nil
}

func (r rangeIDs) at(i int) ObjectID {
	return ObjectID{index: r.base + uint32(i), gen: r.gen}
}

func (r rangeIDs) Offset(ref IDRef) (int, error) {
	id := ref.ID()
	if id.gen != r.gen || id.index < r.base || uint64(id.index) >= uint64(r.base)+uint64(r.n) {
		return -1, fmt.Errorf("%w: %v not in range [%d, %d)", ErrNotFound, id, r.base, uint64(r.base)+uint64(r.n))
	}
	return int(id.index - r.base), nil
}

// BinarySearch is O(1): a range is sorted by construction.
func (r rangeIDs) BinarySearch(ref IDRef) (int, bool) {
	id := ref.ID()
	switch {
	case id.index < r.base:
		return 0, false
	case uint64(id.index) >= uint64(r.base)+uint64(r.n):
		return r.n, false
	}
	off := int(id.index - r.base)
	switch {
	case id.gen == r.gen:
		return off, true
	case id.gen > r.gen:
		return off + 1, false
	default:
		return off, false
	}
}

func (r rangeIDs) Slice(begin, end int) (ArrayIDs, error) {
	if err := checkSlice(begin, end, r.n); err != nil {
		return nil, err
	}
	return rangeIDs{base: r.base + uint32(begin), n: end - begin, gen: r.gen}, nil
}

func (r rangeIDs) Iter() Iter {
	return &rangeIter{r: r}
}

func (r rangeIDs) All() iter.Seq[ObjectID] {
	return func(yield func(ObjectID) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.at(i)) {
				return
			}
		}
	}
}

func (r rangeIDs) String() string {
	return fmt.Sprintf("[%d, %d)@%d", r.base, uint64(r.base)+uint64(r.n), r.gen)
}

type rangeIter struct {
	r   rangeIDs
	pos int
}

func (it *rangeIter) Valid() bool  { return it.pos < it.r.n }
func (it *rangeIter) Advance()     { it.pos++ }
func (it *rangeIter) ID() ObjectID { return it.r.at(it.pos) }
