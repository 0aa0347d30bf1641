// Package treeutil holds diagnostic helpers for tests: a structural dump of
// a Tree's node graph and a compact oracle for tracking expected tree
// contents across long randomized sequences. Nothing here is part of the
// bptree package's exported surface or required by any of its invariants.
package treeutil

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/coignetp/go-bplustree"
)

// nodeSnapshot is a plain-data mirror of a Node's subtree, built entirely
// from bptree's exported accessors so Dump never needs package-internal
// access to render a failing tree.
type nodeSnapshot[V any] struct {
	IsLeaf   bool
	Hashes   []uint64
	Values   []V
	Children []*nodeSnapshot[V]
}

func snapshot[V any](n *bptree.Node[V]) (*nodeSnapshot[V], error) {
	if n == nil {
		return nil, nil
	}
	s := &nodeSnapshot[V]{IsLeaf: n.IsLeaf()}
	if n.IsLeaf() {
		for i := 0; i < n.Len(); i++ {
			h, err := n.KeyHashAt(i)
			if err != nil {
				return nil, err
			}
			v, err := n.ItemAt(i)
			if err != nil {
				return nil, err
			}
			s.Hashes = append(s.Hashes, h)
			s.Values = append(s.Values, v)
		}
		return s, nil
	}
	for i := 0; i < n.Len(); i++ {
		h, err := n.ChildHashAt(i)
		if err != nil {
			return nil, err
		}
		c, err := n.ChildAt(i)
		if err != nil {
			return nil, err
		}
		cs, err := snapshot[V](c)
		if err != nil {
			return nil, err
		}
		s.Hashes = append(s.Hashes, h)
		s.Children = append(s.Children, cs)
	}
	return s, nil
}

// Dump writes a spew-formatted rendering of t's node graph to w. It is
// meant to be called from a failing test assertion, the way
// ethereum-go-verkle's tree tests dump verkle-tree structure on mismatch.
func Dump[V any](w io.Writer, t *bptree.Tree[V]) error {
	snap, err := snapshot[V](t.Root())
	if err != nil {
		return err
	}
	spew.Fdump(w, snap)
	return nil
}
