package bptree

import "math"

// delete removes the entry with the given hash. A leaf removes the matching
// entry directly, propagating its new minimum upward if the removed key was
// the leaf's own minimum. An internal node recurses into the child whose
// range contains hash and, once the recursive call returns, dissolves that
// child if it has fallen under the occupancy floor. The root is never
// dissolved: nothing above it ever calls dissolve on it.
func (n *Node[V]) delete(hash uint64) bool {
	if n.isLeaf {
		idx, found := n.findKeyIndex(hash)
		if !found {
			return false
		}
		removedMin := idx == 0
		n.keys = append(n.keys[:idx], n.keys[idx+1:]...)
		if removedMin && len(n.keys) > 0 && n.parent != nil {
			n.parent.propagateBoundary(hash, n.keys[0].hash)
		}
		return true
	}

	idx := n.lowerBoundChildIndex(hash)
	child := n.children[idx].child
	removed := child.delete(hash)
	if removed && child.underfull(n.degree) {
		n.dissolve(n.children[idx].boundary)
	}
	return removed
}

func (n *Node[V]) underfull(degree int) bool {
	floor := degree / 2
	if n.isLeaf {
		return len(n.keys) < floor
	}
	return len(n.children) < floor
}

// dissolve removes the child edge with the given boundary and re-homes the
// child's contents into this node: a dissolved leaf's keys are reinserted,
// a dissolved internal node's children are re-added. This is the library's
// stand-in for sibling-merge rebalancing. A node left with no children
// becomes a leaf again. This node does not split until re-homing is done,
// and the new minimum goes up to the ancestors only after that.
func (n *Node[V]) dissolve(boundary uint64) {
	idx := n.findChildEdge(boundary)
	if idx == -1 {
		return
	}
	child := n.children[idx].child

	n.children = append(n.children[:idx], n.children[idx+1:]...)
	if len(n.children) == 0 {
		n.isLeaf = true
	}

	degree := n.degree
	n.degree = math.MaxInt
	if child.isLeaf {
		for _, e := range child.keys {
			n.insert(e.hash, e.value)
		}
	} else {
		for _, ce := range child.children {
			n.addNode(ce.child)
		}
	}
	n.degree = degree

	if idx == 0 && n.parent != nil {
		if next, ok := n.minHash(); ok && next != boundary {
			n.parent.propagateBoundary(boundary, next)
		}
	}
	if !n.isLeaf && len(n.children) > n.degree {
		n.internalSplit()
	}
}

// DiscardChild removes the child edge with the given boundary hash and
// destroys that child's entire subtree without re-homing its contents
// (the keep_contents=false variant of dissolve). It is not used by Delete;
// it is exposed only as an explicit structural operation for callers that
// want to prune a subtree outright.
func (n *Node[V]) DiscardChild(boundary uint64) error {
	if n.isLeaf {
		return ErrWrongNodeKind
	}
	idx := n.findChildEdge(boundary)
	if idx == -1 {
		return ErrNotFound
	}

	if idx == 0 && n.parent != nil {
		var next uint64
		if len(n.children) > 1 {
			next = n.children[1].boundary
		}
		n.parent.propagateBoundary(boundary, next)
	}

	n.children = append(n.children[:idx], n.children[idx+1:]...)
	return nil
}

func (n *Node[V]) findChildEdge(boundary uint64) int {
	for i := range n.children {
		if n.children[i].boundary == boundary {
			return i
		}
	}
	return -1
}
