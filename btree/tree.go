package btree

import "cmp"

// Tree is a sorted set backed by a persistent, copy-on-write B-tree.
//
// T is the element type; ordering and equality both derive from the
// configured comparison function. A Tree produced by New is empty but valid.
// Clone produces an O(1) logical copy: the clones share all nodes until one
// of them mutates, at which point only the touched root-to-leaf path is
// privately copied.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
	// cloneCount tallies node clones for mutation cost accounting.
	cloneCount uint64
}

// New creates an empty sorted set with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg, root: newNode[T]()}, nil
}

// NewOrdered creates an empty sorted set over a naturally ordered element
// type, using the default branching factor.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	t, err := New(Config[T]{Compare: cmp.Compare[T]})
	assert(err == nil, "NewOrdered: default configuration must validate")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Clone returns a logical copy of the set in O(1).
//
// The copy shares the receiver's nodes; a later mutation of either tree
// privately clones the nodes it touches, so the other tree remains
// observably unchanged.
func (t *Tree[T]) Clone() *Tree[T] {
	assert(t != nil && t.root != nil, "Clone called on uninitialized tree")
	t.root.ref++
	return &Tree[T]{cfg: t.cfg, root: t.root}
}

// IsEmpty reports whether the set has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil || (t.root.isLeaf() && len(t.root.elements) == 0)
}

// Len returns the number of elements in the set.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.countElements(t.root)
}

// Height returns the number of node levels, where 1 means the root is a leaf.
//
// The tree enforces uniform leaf depth, so the leftmost path is
// representative.
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Contains reports whether an element equal to x is in the set.
func (t *Tree[T]) Contains(x T) bool {
	n := t.root
	for {
		slot, match := t.findSlot(n, x)
		if match {
			return true
		}
		if n.isLeaf() {
			return false
		}
		n = n.children[slot]
	}
}

// Insert adds x to the set.
//
// When no equal element exists, x is inserted and Insert returns
// (true, x). When an equal element is already present, the set is left
// unchanged and Insert returns (false, member) with the originally stored
// element; a later insert never overwrites payload carried beyond the
// comparison key.
//
// Even a duplicate insert may bump mutation counters on the path it
// descended before finding the match, so cursors must be re-created after
// any Insert call.
func (t *Tree[T]) Insert(x T) (inserted bool, member T) {
	root := t.mutableRoot()
	existing, found, sp := t.insertNode(root, x)
	if found {
		return false, existing
	}
	if sp != nil {
		grown := newNode[T]()
		grown.elements = []T{sp.separator}
		grown.children = []*node[T]{t.root, sp.sibling}
		t.root = grown
		tracer().Debugf("btree: root split, tree height grows to %d", t.Height())
	}
	return true, x
}

// findSlot binary-searches the elements of n for x.
//
// On a match, slot is the matching position. Otherwise slot is the insertion
// point that keeps elements ordered, which doubles as the child slot to
// descend into.
func (t *Tree[T]) findSlot(n *node[T], x T) (slot int, match bool) {
	lo, hi := 0, len(n.elements)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.cfg.Compare(n.elements[mid], x) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	match = lo < len(n.elements) && t.cfg.Compare(x, n.elements[lo]) == 0
	return lo, match
}

// insertNode inserts x into the uniquely owned subtree n.
//
// On a match anywhere in the subtree the stored element is returned with
// found == true and the structure is left as is. Otherwise the element is
// placed at its leaf slot; an overflowing node splits, and the resulting
// splinter propagates to the caller for grafting one level up. The returned
// splinter is non-nil only when n itself split.
func (t *Tree[T]) insertNode(n *node[T], x T) (existing T, found bool, sp *splinter[T]) {
	slot, match := t.findSlot(n, x)
	if match {
		return n.elements[slot], true, nil
	}
	n.gen++
	if n.isLeaf() {
		n.elements = insertAt(n.elements, slot, x)
		if len(n.elements) >= t.cfg.Order {
			s := t.splitNode(n)
			return existing, false, &s
		}
		return existing, false, nil
	}
	child := t.mutableChild(n, slot)
	existing, found, childSplinter := t.insertNode(child, x)
	if found || childSplinter == nil {
		return existing, found, nil
	}
	n.elements = insertAt(n.elements, slot, childSplinter.separator)
	n.children = insertAt(n.children, slot+1, childSplinter.sibling)
	if len(n.elements) >= t.cfg.Order {
		s := t.splitNode(n)
		return existing, false, &s
	}
	return existing, false, nil
}

// countElements returns the total number of elements under n.
func (t *Tree[T]) countElements(n *node[T]) int {
	total := len(n.elements)
	for _, child := range n.children {
		total += t.countElements(child)
	}
	return total
}
