package dbid

import (
	"cmp"
	"strconv"
)

// ObjectID identifies one record of an in-memory dataset.
//
// Two ids are equal iff they denote the same allocation. The zero value is not
// a valid id.
type ObjectID struct {
	index uint32
	gen   uint32
}

// ID implements IDRef.
func (id ObjectID) ID() ObjectID { return id }

// IsValid reports whether id was produced by a factory (it may still be stale).
func (id ObjectID) IsValid() bool { return id.gen != 0 }

// Index returns the slot index of the id.
func (id ObjectID) Index() uint32 { return id.index }

// Generation returns the slot generation the id was issued with.
func (id ObjectID) Generation() uint32 { return id.gen }

func (id ObjectID) String() string {
	return strconv.FormatUint(uint64(id.index), 10) + "." + strconv.FormatUint(uint64(id.gen), 10)
}

// key packs the id for the 64-bit set representation.
// Generation goes high so that ids from the same generation share containers.
func (id ObjectID) key() uint64 {
	return uint64(id.gen)<<32 | uint64(id.index)
}

func fromKey(k uint64) ObjectID {
	return ObjectID{index: uint32(k), gen: uint32(k >> 32)}
}

// compareIDs orders by slot index, then generation.
func compareIDs(a, b ObjectID) int {
	if c := cmp.Compare(a.index, b.index); c != 0 {
		return c
	}
	return cmp.Compare(a.gen, b.gen)
}

// IDRef is a possibly transient reference to an ObjectID.
//
// Implementations such as iteration cursors change what they refer to as they
// advance. Do not retain an IDRef; retain the result of ID() instead.
type IDRef interface {
	ID() ObjectID
}

// Iter is a cursor over a collection. It is itself an IDRef for the current
// position and is invalidated by Advance.
//
//	for it := ids.Iter(); it.Valid(); it.Advance() {
//	    use(it.ID())
//	}
type Iter interface {
	IDRef
	Valid() bool
	Advance()
}

type sliceIter struct {
	ids []ObjectID
	pos int
}

func (it *sliceIter) Valid() bool  { return it.pos < len(it.ids) }
func (it *sliceIter) Advance()     { it.pos++ }
func (it *sliceIter) ID() ObjectID { return it.ids[it.pos] }
