package btree

// frame records one ancestor step of a cursor's descent path: a node and the
// child slot the path took downward through it.
type frame[T any] struct {
	node *node[T]
	slot int
}

// Cursor is a validated bidirectional position within one tree generation.
//
// A cursor captures the identity of the tree's root and the root's mutation
// counter at creation time. Any structural mutation of the originating tree
// invalidates every cursor created from it, even when the mutation was a
// descending no-op; a clone of the tree that was never itself mutated keeps
// its cursors valid. Using a stale or foreign cursor is a programmer error
// and panics immediately.
//
// The current position is a (node, slot) pair. On the root, slot ==
// len(elements) is the end sentinel, one past the largest element.
type Cursor[T any] struct {
	tree *Tree[T]
	// root is the captured root, compared by identity only.
	root *node[T]
	// gen is the root mutation count at creation time.
	gen  uint64
	path []frame[T]
	node *node[T]
	slot int
}

// Start returns a cursor at the smallest element, which for an empty set is
// the end position.
func (t *Tree[T]) Start() *Cursor[T] {
	assert(t != nil && t.root != nil, "Start called on uninitialized tree")
	c := &Cursor[T]{tree: t, root: t.root, gen: t.root.gen, node: t.root}
	for !c.node.isLeaf() {
		c.push(c.node.children[0], 0)
	}
	return c
}

// End returns the cursor one past the largest element.
func (t *Tree[T]) End() *Cursor[T] {
	assert(t != nil && t.root != nil, "End called on uninitialized tree")
	return &Cursor[T]{
		tree: t,
		root: t.root,
		gen:  t.root.gen,
		node: t.root,
		slot: len(t.root.elements),
	}
}

// After returns a new cursor positioned one element past c.
func (t *Tree[T]) After(c *Cursor[T]) *Cursor[T] {
	assert(c != nil && c.tree == t, "cursor does not belong to this tree")
	d := c.clone()
	d.Next()
	return d
}

// Before returns a new cursor positioned one element before c.
func (t *Tree[T]) Before(c *Cursor[T]) *Cursor[T] {
	assert(c != nil && c.tree == t, "cursor does not belong to this tree")
	d := c.clone()
	d.Prev()
	return d
}

// Item returns the element the cursor references.
func (c *Cursor[T]) Item() T {
	c.validate()
	assert(!c.AtEnd(), "cursor dereferenced at the end position")
	return c.node.elements[c.slot]
}

// AtEnd reports whether the cursor is at the end position.
func (c *Cursor[T]) AtEnd() bool {
	return c.node == c.root && c.slot == len(c.node.elements)
}

// Next advances the cursor in place to the next element in ascending order.
//
// Advancing past the end is a programmer error and panics.
func (c *Cursor[T]) Next() {
	c.validate()
	assert(!c.AtEnd(), "cursor advanced past the end")
	c.slot++
	if c.node.isLeaf() {
		// A used-up leaf hands control back to the nearest ancestor whose
		// separator at the descent slot is still unvisited; running out of
		// ancestors lands on the root's end sentinel.
		for c.slot == len(c.node.elements) && c.node != c.root {
			c.pop()
		}
	} else {
		// The next element in order is the leftmost one below the child
		// following the separator just visited.
		for !c.node.isLeaf() {
			c.push(c.node.children[c.slot], 0)
		}
	}
}

// Prev steps the cursor in place to the previous element.
//
// Stepping before the first element is a programmer error and panics.
func (c *Cursor[T]) Prev() {
	c.validate()
	if c.node.isLeaf() {
		for c.slot == 0 && c.node != c.root {
			c.pop()
		}
		assert(c.slot > 0, "cursor stepped before the start")
		c.slot--
	} else {
		// The previous element is the rightmost one below the child
		// preceding the current separator.
		for !c.node.isLeaf() {
			child := c.node.children[c.slot]
			if child.isLeaf() {
				c.push(child, len(child.elements)-1)
			} else {
				c.push(child, len(child.elements))
			}
		}
	}
}

// Equal reports whether two cursors reference the same position.
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	c.validateWith(other)
	return c.node == other.node && c.slot == other.slot
}

// Less orders cursors by the elements they reference; the end position sorts
// after every element. Elements are unique within a set, so this is a total
// order over positions.
func (c *Cursor[T]) Less(other *Cursor[T]) bool {
	c.validateWith(other)
	switch {
	case c.AtEnd():
		return false
	case other.AtEnd():
		return true
	default:
		return c.tree.cfg.Compare(c.node.elements[c.slot], other.node.elements[other.slot]) < 0
	}
}

// validate checks that the cursor still matches its tree's current root
// identity and generation. Every public cursor operation validates first.
func (c *Cursor[T]) validate() {
	assert(c != nil && c.tree != nil && c.node != nil, "cursor is not initialized")
	assert(c.root == c.tree.root, "cursor invalidated by a structural mutation of its tree")
	assert(c.gen == c.root.gen, "cursor invalidated by a structural mutation of its tree")
}

// validateWith checks both cursors and that they share one tree generation.
func (c *Cursor[T]) validateWith(other *Cursor[T]) {
	c.validate()
	other.validate()
	assert(c.root == other.root, "cursors compared across different trees")
}

func (c *Cursor[T]) clone() *Cursor[T] {
	d := *c
	d.path = append([]frame[T](nil), c.path...)
	return &d
}

// push descends into child, remembering the current frame on the path.
func (c *Cursor[T]) push(child *node[T], slot int) {
	assert(child != nil, "cursor descended into nil child")
	c.path = append(c.path, frame[T]{node: c.node, slot: c.slot})
	c.node = child
	c.slot = slot
}

// pop ascends to the nearest remembered ancestor frame.
func (c *Cursor[T]) pop() {
	assert(len(c.path) > 0, "cursor ascended past the root")
	f := c.path[len(c.path)-1]
	c.path = c.path[:len(c.path)-1]
	c.node = f.node
	c.slot = f.slot
}
