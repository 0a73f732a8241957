package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: element ordering
// and separation, child counts, uniform leaf depth, occupancy bounds and
// reference count sanity. Any failure indicates a tree algorithm bug, never
// an input error.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvalidStructure)
	}
	_, err := t.checkNode(t.root, true, nil, nil)
	return err
}

// checkNode validates the subtree under n and returns its height. lower and
// upper are the exclusive separator bounds inherited from ancestors, nil at
// the open ends.
func (t *Tree[T]) checkNode(n *node[T], isRoot bool, lower, upper *T) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidStructure)
	}
	if n.ref < 1 {
		return 0, fmt.Errorf("%w: node reference count is %d", ErrInvalidStructure, n.ref)
	}
	if len(n.elements) >= t.cfg.Order {
		return 0, fmt.Errorf("%w: node holds %d elements at order %d",
			ErrInvalidStructure, len(n.elements), t.cfg.Order)
	}
	if !isRoot && len(n.elements) == 0 {
		return 0, fmt.Errorf("%w: non-root node is empty", ErrInvalidStructure)
	}
	for i := range n.elements {
		if i > 0 && t.cfg.Compare(n.elements[i-1], n.elements[i]) >= 0 {
			return 0, fmt.Errorf("%w: elements not strictly ascending at slot %d",
				ErrInvalidStructure, i)
		}
		if lower != nil && t.cfg.Compare(*lower, n.elements[i]) >= 0 {
			return 0, fmt.Errorf("%w: element at slot %d not above ancestor separator",
				ErrInvalidStructure, i)
		}
		if upper != nil && t.cfg.Compare(n.elements[i], *upper) >= 0 {
			return 0, fmt.Errorf("%w: element at slot %d not below ancestor separator",
				ErrInvalidStructure, i)
		}
	}
	if n.isLeaf() {
		return 1, nil
	}
	if len(n.children) != len(n.elements)+1 {
		return 0, fmt.Errorf("%w: child count %d does not match %d elements",
			ErrInvalidStructure, len(n.children), len(n.elements))
	}
	var childHeight int
	for i, child := range n.children {
		lo, hi := lower, upper
		if i > 0 {
			lo = &n.elements[i-1]
		}
		if i < len(n.elements) {
			hi = &n.elements[i]
		}
		h, cerr := t.checkNode(child, false, lo, hi)
		if cerr != nil {
			return 0, cerr
		}
		if i == 0 {
			childHeight = h
		} else if h != childHeight {
			return 0, fmt.Errorf("%w: non-uniform leaf depth below child %d",
				ErrInvalidStructure, i)
		}
	}
	return childHeight + 1, nil
}
