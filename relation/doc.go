// Package relation holds in-memory vector datasets addressed by dbid.
//
// A Vectors relation allocates one contiguous dbid.Range for its rows, so an
// id resolves to its vector with a single offset computation. Rows are stored
// in one flat buffer.
package relation
