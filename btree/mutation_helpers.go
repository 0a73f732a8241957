package btree

// newNode allocates an empty node owned by its creator.
func newNode[T any]() *node[T] {
	return &node[T]{ref: 1}
}

// cloneNode creates a private copy of n for path-copy updates.
//
// The copy is shallow: child pointers are shared with the original, and each
// shared child gains one reference. Children are copied lazily, only when a
// mutation path actually descends into them. The clone starts with a fresh
// mutation counter; cursors distinguish it from the original by identity.
func (t *Tree[T]) cloneNode(n *node[T]) *node[T] {
	assert(n != nil, "cloneNode called with nil node")
	c := &node[T]{
		ref:      1,
		elements: append([]T(nil), n.elements...),
		children: append([]*node[T](nil), n.children...),
	}
	for _, child := range c.children {
		child.ref++
	}
	t.cloneCount++
	return c
}

// mutableRoot returns a uniquely owned root, cloning a shared one first.
func (t *Tree[T]) mutableRoot() *node[T] {
	assert(t.root != nil, "tree has no root node")
	if t.root.ref > 1 {
		c := t.cloneNode(t.root)
		t.root.ref--
		t.root = c
	}
	return t.root
}

// mutableChild returns a uniquely owned child at slot, cloning a shared one
// and swapping it into the parent first. The parent must itself be uniquely
// owned.
func (t *Tree[T]) mutableChild(n *node[T], slot int) *node[T] {
	assert(n != nil && !n.isLeaf(), "mutableChild called on leaf node")
	assert(slot >= 0 && slot < len(n.children), "mutableChild slot out of range")
	child := n.children[slot]
	if child.ref > 1 {
		c := t.cloneNode(child)
		child.ref--
		n.children[slot] = c
		return c
	}
	return child
}

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// splitNode splits an overflowing node around its middle element.
//
// The element at middle becomes the separator; elements strictly after it
// move to a freshly created right sibling, and for internal nodes the
// children after middle follow (children up to and including middle stay).
// Ownership of moved children transfers to the sibling, so no reference
// counts change.
func (t *Tree[T]) splitNode(n *node[T]) splinter[T] {
	count := len(n.elements)
	assert(count >= t.cfg.Order, "splitNode called on node within capacity")
	middle := count / 2
	separator := n.elements[middle]
	sibling := newNode[T]()
	sibling.elements = append([]T(nil), n.elements[middle+1:]...)
	n.elements = append([]T(nil), n.elements[:middle]...)
	if !n.isLeaf() {
		sibling.children = append([]*node[T](nil), n.children[middle+1:]...)
		n.children = append([]*node[T](nil), n.children[:middle+1]...)
	}
	return splinter[T]{separator: separator, sibling: sibling}
}
