package bptree

import "fmt"

// Tree is a thin façade owning the root Node, the degree, and the hash
// function. It exposes the user-level operations and delegates the node
// algebra to Node.
type Tree[V any] struct {
	root   *Node[V]
	degree int
	hashFn func(V) uint64
}

// Config bundles the optional construction knobs for a Tree, generalizing
// New for callers that also want to hint an initial leaf capacity (useful
// when the caller knows it is about to perform a large bulk insert).
type Config[V any] struct {
	Degree           uint
	HashFn           func(V) uint64
	LeafCapacityHint int
}

// New allocates an empty leaf root and returns a Tree with the given degree
// and hash function. degree must be at least 3.
func New[V any](degree uint, hashFn func(V) uint64) (*Tree[V], error) {
	return NewFromConfig(Config[V]{Degree: degree, HashFn: hashFn})
}

// NewFromConfig is New with the additional knobs in Config.
func NewFromConfig[V any](cfg Config[V]) (*Tree[V], error) {
	if cfg.Degree < 3 {
		return nil, fmt.Errorf("bptree: degree must be >= 3, got %d", cfg.Degree)
	}
	if cfg.HashFn == nil {
		return nil, fmt.Errorf("bptree: hashFn must not be nil")
	}
	root := newLeaf[V](int(cfg.Degree), nil)
	if cfg.LeafCapacityHint > 0 {
		root.keys = make([]entry[V], 0, cfg.LeafCapacityHint)
	}
	return &Tree[V]{root: root, degree: int(cfg.Degree), hashFn: cfg.HashFn}, nil
}

// Root returns the tree's root node.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Degree returns the tree's branching factor.
func (t *Tree[V]) Degree() int { return t.degree }

// HashFn returns the tree's hash function.
func (t *Tree[V]) HashFn() func(V) uint64 { return t.hashFn }

// Insert computes the value's hash, descends to the target leaf, and
// inserts. A second insert with the same hash overwrites the stored value.
func (t *Tree[V]) Insert(value V) {
	t.InsertByHash(t.hashFn(value), value)
}

// InsertByHash inserts value under an explicit hash, bypassing HashFn. This
// is useful when the caller has already computed the hash (or is using the
// tree as a hash-keyed map rather than a hashed set).
func (t *Tree[V]) InsertByHash(hash uint64, value V) {
	if t.root == nil {
		t.root = newLeaf[V](t.degree, nil)
	}
	t.root.insert(hash, value)
}

// Search computes the value's hash and returns the stored value with that
// hash, or ErrNotFound if absent.
func (t *Tree[V]) Search(value V) (V, error) {
	return t.SearchByHash(t.hashFn(value))
}

// SearchByHash descends to the target leaf and returns the stored value, or
// ErrNotFound if absent, or ErrEmptyTree if the tree has no root.
func (t *Tree[V]) SearchByHash(hash uint64) (V, error) {
	var zero V
	leaf, err := t.searchLeaf(hash)
	if err != nil {
		return zero, err
	}
	return leaf.ItemByHash(hash)
}

// Delete computes the value's hash and deletes the matching entry, if any.
func (t *Tree[V]) Delete(value V) bool {
	return t.DeleteByHash(t.hashFn(value))
}

// DeleteByHash deletes the entry with the given hash. It returns whether a
// removal occurred.
func (t *Tree[V]) DeleteByHash(hash uint64) bool {
	if t.root == nil {
		return false
	}
	return t.root.delete(hash)
}

// searchLeaf descends from the root to the leaf whose key range contains
// hash, per the same rule used by insert.
func (t *Tree[V]) searchLeaf(hash uint64) (*Node[V], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	n := t.root
	for !n.isLeaf {
		n = n.lowerBoundChildNode(hash)
	}
	return n, nil
}

// DeepCopyFrom releases this tree's current contents and rebuilds it as a
// structurally independent clone of other: same degree, same hash function,
// no shared nodes.
func (t *Tree[V]) DeepCopyFrom(other *Tree[V]) {
	t.degree = other.degree
	t.hashFn = other.hashFn
	if other.root == nil {
		t.root = nil
		return
	}
	root := newLeaf[V](t.degree, nil)
	root.deepCopyFrom(other.root)
	t.root = root
}

// deepCopyFrom populates n to be a structurally independent clone of src:
// a leaf's keys are reinserted one at a time, an internal node's children
// are recursively cloned and re-added. This mirrors the source library's
// own deep-copy discipline (original_source/src/bptree.hpp DeepCopyFrom):
// never copy a parent pointer across a subtree boundary, only ever set it
// explicitly via insert/addNode as part of (re)construction.
func (n *Node[V]) deepCopyFrom(src *Node[V]) {
	n.isLeaf = src.isLeaf
	if src.isLeaf {
		for _, e := range src.keys {
			n.insert(e.hash, e.value)
		}
		return
	}
	for _, ce := range src.children {
		child := newLeaf[V](n.degree, n)
		child.deepCopyFrom(ce.child)
		n.addNode(child)
	}
}

// DeepCopyInto makes dst a structurally independent clone of n's subtree.
// dst's own parent pointer is left untouched; only dst's content and
// descendants are (re)populated.
func (n *Node[V]) DeepCopyInto(dst *Node[V]) {
	dst.degree = n.degree
	dst.keys = nil
	dst.children = nil
	dst.isLeaf = true
	dst.deepCopyFrom(n)
}
