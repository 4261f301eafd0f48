package dbid

// Unmodifiable returns a read-only view of ids. The view reflects later
// changes to ids; use Factory.NewStatic for a snapshot.
func Unmodifiable(ids IDs) IDs {
	switch v := ids.(type) {
	case StaticIDs:
		return v
	case ArrayIDs:
		return unmodifiableArray{ArrayIDs: v}
	case SetIDs:
		return unmodifiableSet{SetIDs: v}
	default:
		return unmodifiableIDs{IDs: v}
	}
}

type unmodifiableIDs struct{ IDs }

type unmodifiableArray struct{ ArrayIDs }

type unmodifiableSet struct{ SetIDs }

// staticSet is an immutable set snapshot.
type staticSet struct {
	SetIDs
}

func (staticSet) isStatic() {}

// newStatic copies src into an immutable collection of the same kind.
func newStatic(src IDs) StaticIDs {
	switch v := src.(type) {
	case StaticIDs:
		return v
	case SetIDs:
		return staticSet{SetIDs: newHashSetFrom(v)}
	default:
		return staticArray{idSlice: newArrayFrom(v).idSlice}
	}
}

// StaticArrayOf returns an immutable array holding a copy of ids.
func StaticArrayOf(ids []ObjectID) ArrayIDs {
	return staticArray{idSlice: append(idSlice(nil), ids...)}
}
