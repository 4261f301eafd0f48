package dbid

import (
	"iter"
	"slices"
)

// idSlice implements the read-only array capabilities over a plain slice.
type idSlice []ObjectID

func (s idSlice) Len() int      { return len(s) }
func (s idSlice) IsEmpty() bool { return len(s) == 0 }

func (s idSlice) Contains(ref IDRef) bool {
	return slices.Contains(s, ref.ID())
}

func (s idSlice) Iter() Iter { return &sliceIter{ids: s} }

func (s idSlice) All() iter.Seq[ObjectID] {
	return slices.Values(s)
}

func (s idSlice) Get(i int) (ObjectID, error) {
	if err := checkIndex(i, len(s)); err != nil {
		return ObjectID{}, err
	}
	return s[i], nil
}

func (s idSlice) BinarySearch(ref IDRef) (int, bool) {
	return slices.BinarySearchFunc(s, ref.ID(), compareIDs)
}

func (s idSlice) Slice(begin, end int) (ArrayIDs, error) {
	if err := checkSlice(begin, end, len(s)); err != nil {
		return nil, err
	}
	return arrayView{idSlice: s[begin:end:end]}, nil
}

// arrayView is a read-only window into another array. It reflects later
// writes to the positions it covers.
type arrayView struct {
	idSlice
}

// staticArray is an immutable array of ids.
type staticArray struct {
	idSlice
}

func (staticArray) isStatic() {}

func (s staticArray) Slice(begin, end int) (ArrayIDs, error) {
	if err := checkSlice(begin, end, len(s.idSlice)); err != nil {
		return nil, err
	}
	return staticArray{idSlice: s.idSlice[begin:end:end]}, nil
}

// arrayIDs is the default ArrayModifiableIDs.
type arrayIDs struct {
	idSlice
}

func newArray(hint int) *arrayIDs {
	return &arrayIDs{idSlice: make(idSlice, 0, max(hint, 0))}
}

func newArrayFrom(src IDs) *arrayIDs {
	a := newArray(src.Len())
	for id := range src.All() {
		a.idSlice = append(a.idSlice, id)
	}
	return a
}

func (a *arrayIDs) Add(ref IDRef) bool {
	a.idSlice = append(a.idSlice, ref.ID())
	return true
}

func (a *arrayIDs) AddAll(other IDs) bool {
	n := len(a.idSlice)
	a.idSlice = slices.Grow(a.idSlice, other.Len())
	for id := range other.All() {
		a.idSlice = append(a.idSlice, id)
	}
	return len(a.idSlice) > n
}

func (a *arrayIDs) Remove(ref IDRef) bool {
	i := slices.Index(a.idSlice, ref.ID())
	if i < 0 {
		return false
	}
	a.idSlice = slices.Delete(a.idSlice, i, i+1)
	return true
}

func (a *arrayIDs) RemoveAll(other IDs) bool {
	n := len(a.idSlice)
	drop := EnsureSet(other)
	a.idSlice = slices.DeleteFunc(a.idSlice, func(id ObjectID) bool {
		return drop.Contains(id)
	})
	return len(a.idSlice) < n
}

func (a *arrayIDs) Clear() {
	clear(a.idSlice)
	a.idSlice = a.idSlice[:0]
}

func (a *arrayIDs) Set(i int, ref IDRef) (ObjectID, error) {
	if err := checkIndex(i, len(a.idSlice)); err != nil {
		return ObjectID{}, err
	}
	prev := a.idSlice[i]
	a.idSlice[i] = ref.ID()
	return prev, nil
}

func (a *arrayIDs) RemoveAt(i int) (ObjectID, error) {
	if err := checkIndex(i, len(a.idSlice)); err != nil {
		return ObjectID{}, err
	}
	prev := a.idSlice[i]
	a.idSlice = slices.Delete(a.idSlice, i, i+1)
	return prev, nil
}

func (a *arrayIDs) Swap(i, j int) error {
	if err := checkIndex(i, len(a.idSlice)); err != nil {
		return err
	}
	if err := checkIndex(j, len(a.idSlice)); err != nil {
		return err
	}
	a.idSlice[i], a.idSlice[j] = a.idSlice[j], a.idSlice[i]
	return nil
}

func (a *arrayIDs) Sort() {
	slices.SortFunc(a.idSlice, compareIDs)
}

func (a *arrayIDs) SortFunc(cmp func(a, b ObjectID) int) {
	slices.SortStableFunc(a.idSlice, cmp)
}
