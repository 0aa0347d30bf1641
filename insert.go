package bptree

import "sort"

// insert places (hash, value) in the target leaf: a leaf inserts directly
// (or overwrites on a duplicate hash), propagates a new minimum upward, and
// splits once full; an internal node recurses into the child whose range
// contains hash.
func (n *Node[V]) insert(hash uint64, value V) {
	if n.isLeaf {
		idx, found := n.findKeyIndex(hash)
		if found {
			n.keys[idx].value = value
			return
		}

		var oldMin uint64
		hadMin := len(n.keys) > 0
		if hadMin {
			oldMin = n.keys[0].hash
		}

		n.keys = append(n.keys, entry[V]{})
		copy(n.keys[idx+1:], n.keys[idx:])
		n.keys[idx] = entry[V]{hash: hash, value: value}

		if hadMin && hash < oldMin && n.parent != nil {
			n.parent.propagateBoundary(oldMin, hash)
		}

		if len(n.keys) >= n.degree {
			n.leafSplit()
		}
		return
	}

	n.lowerBoundChildNode(hash).insert(hash, value)
}

// leafSplit transfers the upper half of a full leaf's keys to a new sibling.
// A leaf with a parent grows a right sibling under that parent; a root leaf
// is promoted in place to an internal node with two fresh leaf children.
func (n *Node[V]) leafSplit() {
	mid := len(n.keys) / 2
	upper := append([]entry[V](nil), n.keys[mid:]...)
	lower := n.keys[:mid:mid]

	if n.parent != nil {
		n.keys = lower
		right := newLeaf[V](n.degree, n.parent)
		right.keys = upper
		n.parent.addNode(right)
		return
	}

	left := newLeaf[V](n.degree, n)
	left.keys = lower
	right := newLeaf[V](n.degree, n)
	right.keys = upper

	n.keys = nil
	n.isLeaf = false
	n.children = []childEdge[V]{
		{boundary: left.keys[0].hash, child: left},
		{boundary: right.keys[0].hash, child: right},
	}
}

// addNode inserts newChild into children at the position determined by its
// own minimum reachable hash, marks the node internal, and splits if the
// degree is now exceeded.
func (n *Node[V]) addNode(newChild *Node[V]) {
	n.isLeaf = false
	newChild.parent = n

	h, _ := newChild.minHash()
	idx := sort.Search(len(n.children), func(i int) bool { return n.children[i].boundary >= h })
	n.children = append(n.children, childEdge[V]{})
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = childEdge[V]{boundary: h, child: newChild}

	if len(n.children) > n.degree {
		n.internalSplit()
	}
}

// internalSplit is the internal-node counterpart of leafSplit: it transfers
// the upper half of children (re-parenting each) to a new sibling, or, at
// the root, promotes two fresh internal nodes in place.
func (n *Node[V]) internalSplit() {
	mid := len(n.children) / 2
	upper := append([]childEdge[V](nil), n.children[mid:]...)
	lower := n.children[:mid:mid]

	if n.parent != nil {
		n.children = lower
		right := newInternal[V](n.degree, n.parent)
		for i := range upper {
			upper[i].child.parent = right
		}
		right.children = upper
		n.parent.addNode(right)
		return
	}

	left := newInternal[V](n.degree, n)
	for i := range lower {
		lower[i].child.parent = left
	}
	left.children = lower

	right := newInternal[V](n.degree, n)
	for i := range upper {
		upper[i].child.parent = right
	}
	right.children = upper

	n.children = []childEdge[V]{
		{boundary: left.children[0].boundary, child: left},
		{boundary: right.children[0].boundary, child: right},
	}
}

// propagateBoundary updates the boundary of whichever child edge currently
// reads old to new, and recurses into the parent when the updated edge was
// the first one — the only mechanism by which a boundary change becomes
// visible to ancestors.
func (n *Node[V]) propagateBoundary(old, new_ uint64) {
	if n.isLeaf {
		return
	}
	for i := range n.children {
		if n.children[i].boundary == old {
			n.children[i].boundary = new_
			if i == 0 && n.parent != nil {
				n.parent.propagateBoundary(old, new_)
			}
			return
		}
	}
}
