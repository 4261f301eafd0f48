package dbid

import "iter"

// IDs is a read-only collection of object ids.
type IDs interface {
	// Len returns the number of ids in the collection.
	Len() int

	// IsEmpty reports whether the collection has no ids.
	IsEmpty() bool

	// Contains reports whether the referenced id is a member.
	Contains(ref IDRef) bool

	// Iter returns a cursor positioned at the first id.
	Iter() Iter

	// All returns an iterator over the ids.
	All() iter.Seq[ObjectID]
}

// ArrayIDs is an indexable, ordered collection.
type ArrayIDs interface {
	IDs

	// Get returns the id at position i, or an *IndexError.
	Get(i int) (ObjectID, error)

	// BinarySearch looks ref up in a sorted collection. It returns the position
	// where ref is (or would be inserted) and whether it was found.
	BinarySearch(ref IDRef) (int, bool)

	// Slice returns a read-only view of positions [begin, end).
	Slice(begin, end int) (ArrayIDs, error)
}

// SetIDs is a collection with fast membership tests and no duplicates.
type SetIDs interface {
	IDs
	isSet()
}

// StaticIDs is a collection that never changes after construction.
type StaticIDs interface {
	IDs
	isStatic()
}

// ModifiableIDs is a collection that supports insertion and removal.
type ModifiableIDs interface {
	IDs

	// Add inserts ref and reports whether the collection changed.
	Add(ref IDRef) bool

	// AddAll inserts every id of other and reports whether the collection changed.
	AddAll(other IDs) bool

	// Remove deletes one occurrence of ref and reports whether it was present.
	Remove(ref IDRef) bool

	// RemoveAll deletes every id of other and reports whether the collection changed.
	RemoveAll(other IDs) bool

	// Clear removes all ids.
	Clear()
}

// ArrayModifiableIDs is a growable array of ids.
type ArrayModifiableIDs interface {
	ArrayIDs
	ModifiableIDs

	// Set replaces the id at position i and returns the previous one.
	Set(i int, ref IDRef) (ObjectID, error)

	// RemoveAt deletes the id at position i, preserving order.
	RemoveAt(i int) (ObjectID, error)

	// Swap exchanges positions i and j.
	Swap(i, j int) error

	// Sort orders the ids ascending by Factory.Compare order.
	Sort()

	// SortFunc orders the ids by cmp.
	SortFunc(cmp func(a, b ObjectID) int)
}

// HashSetModifiableIDs is a modifiable set of ids.
type HashSetModifiableIDs interface {
	SetIDs
	ModifiableIDs

	// RetainAll keeps only the ids also present in other.
	RetainAll(other IDs) bool
}

// Range is a compact run of consecutive ids sharing one generation.
type Range interface {
	ArrayIDs
	StaticIDs

	// Offset returns the position of ref in the range. It is the inverse of Get.
	Offset(ref IDRef) (int, error)
}
