// Package bptree implements a generic in-memory B+ tree index: an ordered
// associative container keyed by a caller-derived 64-bit hash, mapping to a
// value of arbitrary type.
//
// The tree never performs disk I/O, never synchronizes internally, and never
// calls back into caller code during a structural mutation. Callers must
// serialize all operations on a single Tree themselves.
package bptree
