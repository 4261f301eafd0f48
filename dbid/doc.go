// Package dbid provides object identities for the records of an in-memory
// dataset and typed collections of them.
//
// # Identities
//
// An ObjectID is an opaque, comparable token handed out by a Factory. Ids are
// slot indices tagged with a generation: deallocating an id frees its slot and
// bumps the slot generation, so ids that outlive their allocation are detected
// instead of silently aliasing the next record placed in the slot.
//
//	f := dbid.NewFactory()
//	ids, err := f.NewRange(1000) // one allocation for a whole dataset
//	if err != nil {
//	    return err
//	}
//	defer f.DeallocateRange(ids)
//
// IDRef is a transient view of an id (a cursor mid-iteration, for example).
// Callers must not keep an IDRef beyond the call that produced it; call ID()
// to materialize a value that can be retained.
//
// # Collections
//
// Collections are described by capabilities rather than by representation:
//
//   - ArrayIDs: indexable, sliceable, binary-searchable
//   - SetIDs: fast membership tests (backed by a Roaring bitmap)
//   - StaticIDs: immutable once built
//   - ModifiableIDs: Add/Remove/Clear
//   - Range: a compact [base, base+n) run; Offset(Get(i)) == i
//
// Empty is the zero-element collection and implements every read-only
// capability.
//
// # Concurrency
//
// Factory allocation state is guarded by a mutex. Collections are not safe for
// concurrent mutation; each query owns its own.
package dbid
