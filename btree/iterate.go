package btree

import "iter"

// All returns a lazy ascending iterator over the set.
//
// The sequence is finite, duplicate-free and restartable: a Tree value is
// immutable between mutations, so ranging twice yields the same elements.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// ForEach walks the set in ascending order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) ForEach(fn func(x T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

// forEachNode interleaves children and separators in the standard multiway
// in-order schedule: children[0], elements[0], children[1], ...
func (t *Tree[T]) forEachNode(n *node[T], fn func(x T) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.isLeaf() {
		for _, x := range n.elements {
			if !fn(x) {
				return false
			}
		}
		return true
	}
	for i, x := range n.elements {
		if !t.forEachNode(n.children[i], fn) {
			return false
		}
		if !fn(x) {
			return false
		}
	}
	return t.forEachNode(n.children[len(n.elements)], fn)
}
