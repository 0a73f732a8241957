package redblack

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidConfig signals an invalid set configuration.
var ErrInvalidConfig = errors.New("redblack: invalid configuration")

type color bool

const (
	red   color = true
	black color = false
)

// node is an immutable tree node; every mutation builds fresh nodes along
// the edited path and shares the rest.
type node[T any] struct {
	color color
	left  *node[T]
	right *node[T]
	elem  T
}

// Set is a sorted set over a persistent red-black tree.
type Set[T any] struct {
	compare func(a, b T) int
	root    *node[T]
	size    int
}

// New creates an empty set over the given total order.
func New[T any](compare func(a, b T) int) (*Set[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return &Set[T]{compare: compare}, nil
}

// NewOrdered creates an empty set over a naturally ordered element type.
func NewOrdered[T cmp.Ordered]() *Set[T] {
	s, err := New(cmp.Compare[T])
	assert(err == nil, "NewOrdered: default configuration must validate")
	return s
}

// Clone returns a logical copy of the set in O(1). Nodes are immutable, so
// no further bookkeeping is needed; both sets evolve independently.
func (s *Set[T]) Clone() *Set[T] {
	assert(s != nil, "Clone called on nil set")
	c := *s
	return &c
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.size
}

// Contains reports whether an element equal to x is a member.
func (s *Set[T]) Contains(x T) bool {
	n := s.root
	for n != nil {
		switch c := s.compare(x, n.elem); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds x unless an equal element is already present.
//
// On a duplicate the previously stored member is returned unchanged and no
// nodes are rebuilt.
func (s *Set[T]) Insert(x T) (inserted bool, member T) {
	root, existing, found := s.insert(s.root, x)
	if found {
		return false, existing
	}
	root.color = black
	s.root = root
	s.size++
	return true, x
}

// insert rebuilds the path down to x's position. The returned node is a
// freshly allocated red-black subtree unless the element was found, in which
// case n is returned as is.
func (s *Set[T]) insert(n *node[T], x T) (out *node[T], existing T, found bool) {
	if n == nil {
		return &node[T]{color: red, elem: x}, existing, false
	}
	switch c := s.compare(x, n.elem); {
	case c == 0:
		return n, n.elem, true
	case c < 0:
		l, existing, found := s.insert(n.left, x)
		if found {
			return n, existing, true
		}
		return balance(n.color, l, n.elem, n.right), existing, false
	default:
		r, existing, found := s.insert(n.right, x)
		if found {
			return n, existing, true
		}
		return balance(n.color, n.left, n.elem, r), existing, false
	}
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

func mk[T any](col color, l *node[T], e T, r *node[T]) *node[T] {
	return &node[T]{color: col, left: l, right: r, elem: e}
}

// balance restores the red-black shape after an insert one level below.
//
// The four rotation cases are Okasaki's: a black node with a red child that
// itself has a red child on either side becomes a red node with two black
// children, redistributing the four subtrees in order.
func balance[T any](col color, l *node[T], e T, r *node[T]) *node[T] {
	if col == black {
		switch {
		case isRed(l) && isRed(l.left):
			return mk(red,
				mk(black, l.left.left, l.left.elem, l.left.right),
				l.elem,
				mk(black, l.right, e, r))
		case isRed(l) && isRed(l.right):
			return mk(red,
				mk(black, l.left, l.elem, l.right.left),
				l.right.elem,
				mk(black, l.right.right, e, r))
		case isRed(r) && isRed(r.left):
			return mk(red,
				mk(black, l, e, r.left.left),
				r.left.elem,
				mk(black, r.left.right, r.elem, r.right))
		case isRed(r) && isRed(r.right):
			return mk(red,
				mk(black, l, e, r.left),
				r.elem,
				mk(black, r.right.left, r.right.elem, r.right.right))
		}
	}
	return mk(col, l, e, r)
}

// All returns a lazy ascending iterator over the members.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(s.root, yield)
	}
}

func inorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.elem) && inorder(n.right, yield)
}

// checkInvariants verifies red-black shape and ordering for tests: the root
// is black, no red node has a red child, and every path to a nil leaf
// carries the same number of black nodes. It returns the black height.
func (s *Set[T]) checkInvariants() (int, error) {
	if isRed(s.root) {
		return 0, fmt.Errorf("red-black violation: root is red")
	}
	return s.checkNode(s.root, nil, nil)
}

func (s *Set[T]) checkNode(n *node[T], lower, upper *T) (int, error) {
	if n == nil {
		return 1, nil
	}
	if lower != nil && s.compare(*lower, n.elem) >= 0 {
		return 0, fmt.Errorf("ordering violation at %v", n.elem)
	}
	if upper != nil && s.compare(n.elem, *upper) >= 0 {
		return 0, fmt.Errorf("ordering violation at %v", n.elem)
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("red-black violation: red node %v has a red child", n.elem)
	}
	lh, err := s.checkNode(n.left, lower, &n.elem)
	if err != nil {
		return 0, err
	}
	rh, err := s.checkNode(n.right, &n.elem, upper)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("red-black violation: black height %d != %d below %v", lh, rh, n.elem)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}
