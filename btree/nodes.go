package btree

// node is a B-tree node. Leaves and internal nodes share one representation;
// a leaf is a node without children.
//
// elements are strictly ascending and unique. An internal node satisfies
// len(children) == len(elements)+1, with every element of children[i] sorting
// before elements[i] and every element of children[i+1] sorting after it.
type node[T any] struct {
	// ref counts owners of this node: the parent node, or the tree itself
	// for a root. A node with ref > 1 is shared between clones and must be
	// privately copied before any mutation.
	ref int32
	// gen increments on every structural change reachable through this
	// node. It feeds cursor invalidation only and is never consulted by
	// search or insert.
	gen      uint64
	elements []T
	children []*node[T]
}

func (n *node[T]) isLeaf() bool { return len(n.children) == 0 }

// splinter carries a split result one level up: the separator promoted out of
// an overflowing node and the freshly created right sibling. A splinter is
// consumed immediately by the caller and never stored.
type splinter[T any] struct {
	separator T
	sibling   *node[T]
}
