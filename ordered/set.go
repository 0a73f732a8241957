package ordered

import "iter"

// Set is a sorted set of elements under a total order.
//
// Equality and ordering both derive from the backend's comparison function.
// Implementations are not safe for concurrent mutation without external
// synchronization.
type Set[T any] interface {
	// Contains reports whether an element equal to x is a member.
	Contains(x T) bool
	// Insert adds x unless an equal element is already present. It reports
	// whether the insert happened and returns the member equal to x after
	// the call: x itself on a fresh insert, the previously stored element
	// otherwise. A later insert never replaces stored payload.
	Insert(x T) (inserted bool, member T)
	// All returns a finite, restartable ascending iterator over the
	// members, free of duplicates.
	All() iter.Seq[T]
	// Len returns the number of members.
	Len() int
}
