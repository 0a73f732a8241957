package sortedarray

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrInvalidConfig signals an invalid set configuration.
var ErrInvalidConfig = errors.New("sortedarray: invalid configuration")

// Set is a sorted set stored as one strictly ascending slice.
type Set[T any] struct {
	compare  func(a, b T) int
	elements []T
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

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.elements)
}

// Contains reports whether an element equal to x is a member.
func (s *Set[T]) Contains(x T) bool {
	_, found := slices.BinarySearchFunc(s.elements, x, s.compare)
	return found
}

// Insert adds x unless an equal element is already present.
//
// On a duplicate the previously stored member is returned unchanged.
func (s *Set[T]) Insert(x T) (inserted bool, member T) {
	slot, found := slices.BinarySearchFunc(s.elements, x, s.compare)
	if found {
		return false, s.elements[slot]
	}
	s.elements = slices.Insert(s.elements, slot, x)
	return true, x
}

// At returns the i-th smallest member.
func (s *Set[T]) At(i int) T {
	assert(i >= 0 && i < len(s.elements), "At index out of range")
	return s.elements[i]
}

// All returns a lazy ascending iterator over the members.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.elements {
			if !yield(x) {
				return
			}
		}
	}
}
