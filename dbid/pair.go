package dbid

import (
	"cmp"
	"fmt"
)

// Pair is an ordered pair of ids.
type Pair struct {
	First  ObjectID
	Second ObjectID
}

func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// DistancePair is an immutable (distance, id) tuple ordered by distance.
//
// Pairs with equal distance are not equal pairs: the id still tells them apart.
type DistancePair[D cmp.Ordered] struct {
	Distance D
	ID       ObjectID
}

// NewDistancePair creates a pair, materializing ref.
func NewDistancePair[D cmp.Ordered](distance D, ref IDRef) DistancePair[D] {
	return DistancePair[D]{Distance: distance, ID: ref.ID()}
}

func (p DistancePair[D]) String() string {
	return fmt.Sprintf("%v:%v", p.Distance, p.ID)
}

// CompareDistancePairs orders pairs by distance only.
func CompareDistancePairs[D cmp.Ordered](a, b DistancePair[D]) int {
	return cmp.Compare(a.Distance, b.Distance)
}
