package dbid

import (
	"fmt"
	"iter"
)

// Empty is the zero-element collection. It implements every read-only
// capability: ArrayIDs, SetIDs, StaticIDs and Range.
var Empty Range = emptyIDs{}

type emptyIDs struct{}

func (emptyIDs) isSet()    {}
func (emptyIDs) isStatic() {}

func (emptyIDs) Len() int                { return 0 }
func (emptyIDs) IsEmpty() bool           { return true }
func (emptyIDs) Contains(IDRef) bool     { return false }
func (emptyIDs) Iter() Iter              { return emptyIter{} }
func (emptyIDs) All() iter.Seq[ObjectID] { return func(func(ObjectID) bool) {} }

func (emptyIDs) Get(i int) (ObjectID, error) {
	return ObjectID{}, &IndexError{Index: i, Len: 0}
}

func (emptyIDs) BinarySearch(IDRef) (int, bool) { return 0, false }

func (e emptyIDs) Slice(begin, end int) (ArrayIDs, error) {
	if err := checkSlice(begin, end, 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (emptyIDs) Offset(ref IDRef) (int, error) {
	return -1, fmt.Errorf("%w: %v in empty collection", ErrNotFound, ref.ID())
}

func (emptyIDs) String() string { return "[]" }

type emptyIter struct{}

func (emptyIter) Valid() bool { return false }
func (emptyIter) Advance()    {}

// ID panics: there is no current element.
func (emptyIter) ID() ObjectID { panic("dbid: ID called on exhausted iterator") }
