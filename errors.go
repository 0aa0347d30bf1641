package bptree

import "errors"

// Error kinds surfaced by Tree and Node operations. The library never
// recovers from these internally; they are always returned to the caller.
var (
	// ErrNotFound is returned by a lookup for a hash that is absent from
	// the tree. Delete and DeleteByHash report an absent hash by returning
	// false instead.
	ErrNotFound = errors.New("bptree: not found")

	// ErrIndexOutOfRange is returned by an index-based accessor
	// (ItemAt, KeyHashAt, ChildAt, ChildHashAt) when the index is not
	// less than the node's length.
	ErrIndexOutOfRange = errors.New("bptree: index out of range")

	// ErrWrongNodeKind is returned when a leaf-only operation is called
	// on an internal node, or vice versa.
	ErrWrongNodeKind = errors.New("bptree: wrong node kind")

	// ErrEmptyTree is returned by a search on a tree with no root.
	ErrEmptyTree = errors.New("bptree: empty tree")
)
