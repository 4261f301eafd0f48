package heap

import (
	"cmp"
	"fmt"
)

// PriorityObject pairs a priority with a payload.
//
// When used in an Updatable heap the payload is the lookup key: mutating it
// after insertion (or using a payload whose equality changes) breaks the
// heap's index.
type PriorityObject[P cmp.Ordered, T any] struct {
	Priority P
	Object   T
}

// Compare orders by priority only.
func (o PriorityObject[P, T]) Compare(other PriorityObject[P, T]) int {
	return cmp.Compare(o.Priority, other.Priority)
}

func (o PriorityObject[P, T]) String() string {
	return fmt.Sprintf("%v:%v", o.Priority, o.Object)
}
