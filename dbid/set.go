package dbid

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// hashSetIDs is the default HashSetModifiableIDs.
// It wraps a 64-bit Roaring bitmap over packed ids.
type hashSetIDs struct {
	rb *roaring64.Bitmap
}

func newHashSet() *hashSetIDs {
	return &hashSetIDs{rb: roaring64.New()}
}

func newHashSetFrom(src IDs) *hashSetIDs {
	s := newHashSet()
	s.AddAll(src)
	return s
}

func (*hashSetIDs) isSet() {}

func (s *hashSetIDs) Len() int      { return int(s.rb.GetCardinality()) }
func (s *hashSetIDs) IsEmpty() bool { return s.rb.IsEmpty() }

func (s *hashSetIDs) Contains(ref IDRef) bool {
	return s.rb.Contains(ref.ID().key())
}

func (s *hashSetIDs) Iter() Iter {
	it := &setIter{it: s.rb.Iterator()}
	it.Advance()
	return it
}

func (s *hashSetIDs) All() iter.Seq[ObjectID] {
	return func(yield func(ObjectID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(fromKey(it.Next())) {
				return
			}
		}
	}
}

func (s *hashSetIDs) Add(ref IDRef) bool {
	return s.rb.CheckedAdd(ref.ID().key())
}

func (s *hashSetIDs) AddAll(other IDs) bool {
	n := s.rb.GetCardinality()
	if o, ok := other.(*hashSetIDs); ok {
		s.rb.Or(o.rb)
	} else {
		for id := range other.All() {
			s.rb.Add(id.key())
		}
	}
	return s.rb.GetCardinality() != n
}

func (s *hashSetIDs) Remove(ref IDRef) bool {
	return s.rb.CheckedRemove(ref.ID().key())
}

func (s *hashSetIDs) RemoveAll(other IDs) bool {
	n := s.rb.GetCardinality()
	if o, ok := other.(*hashSetIDs); ok {
		s.rb.AndNot(o.rb)
	} else {
		for id := range other.All() {
			s.rb.Remove(id.key())
		}
	}
	return s.rb.GetCardinality() != n
}

func (s *hashSetIDs) RetainAll(other IDs) bool {
	n := s.rb.GetCardinality()
	o, ok := other.(*hashSetIDs)
	if !ok {
		o = newHashSetFrom(other)
	}
	s.rb.And(o.rb)
	return s.rb.GetCardinality() != n
}

func (s *hashSetIDs) Clear() {
	s.rb.Clear()
}

type setIter struct {
	it    roaring64.IntPeekable64
	cur   ObjectID
	valid bool
}

func (it *setIter) Valid() bool  { return it.valid }
func (it *setIter) ID() ObjectID { return it.cur }

func (it *setIter) Advance() {
	if !it.it.HasNext() {
		it.valid = false
		return
	}
	it.cur = fromKey(it.it.Next())
	it.valid = true
}
