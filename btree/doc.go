/*
Package btree provides a sorted set of comparable elements backed by a
copy-on-write B-tree.

The package is intentionally not a generic map container. It is specialized
for set semantics over a caller-supplied total order, with cheap value copies
through structural sharing: cloning a tree is O(1), and a mutation privately
copies only the nodes on the path it touches, leaving every untouched subtree
shared between clones.

Current status:
  - single node representation for leaves and internal nodes,
  - per-node reference counts driving clone-on-write along mutation paths,
  - per-node mutation counters feeding cursor invalidation,
  - recursive insert with binary slot search and split propagation (splinter),
  - root growth as the only height-increasing path,
  - validated bidirectional cursors over (node, slot) path frames,
  - lazy in-order iteration via iter.Seq,
  - strict structural invariant checker for tests.

Deletion is deliberately absent; trees only grow. A Tree must not be mutated
concurrently from multiple goroutines without external synchronization, but
distinct clones are fully independent and safe to use in parallel.

# BSD License

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
