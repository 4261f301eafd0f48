package dbid

// Intersection returns the ids present in both a and b.
func Intersection(a, b IDs) HashSetModifiableIDs {
	if a.Len() > b.Len() {
		a, b = b, a
	}
	lookup := EnsureSet(b)
	out := newHashSet()
	for id := range a.All() {
		if lookup.Contains(id) {
			out.Add(id)
		}
	}
	return out
}

// Union returns the ids present in a or b.
func Union(a, b IDs) HashSetModifiableIDs {
	out := newHashSetFrom(a)
	out.AddAll(b)
	return out
}

// Difference returns the ids of a that are not in b.
func Difference(a, b IDs) HashSetModifiableIDs {
	out := newHashSetFrom(a)
	out.RemoveAll(b)
	return out
}

// EnsureArray returns ids as an ArrayIDs, copying only if needed.
func EnsureArray(ids IDs) ArrayIDs {
	if a, ok := ids.(ArrayIDs); ok {
		return a
	}
	return staticArray{idSlice: newArrayFrom(ids).idSlice}
}

// EnsureSet returns ids as a SetIDs, copying only if needed.
func EnsureSet(ids IDs) SetIDs {
	if s, ok := ids.(SetIDs); ok {
		return s
	}
	return newHashSetFrom(ids)
}

// EnsureModifiable returns ids as a ModifiableIDs, copying only if needed.
// Sets stay sets, everything else becomes an array.
func EnsureModifiable(ids IDs) ModifiableIDs {
	if m, ok := ids.(ModifiableIDs); ok {
		return m
	}
	if _, ok := ids.(SetIDs); ok {
		return newHashSetFrom(ids)
	}
	return newArrayFrom(ids)
}
