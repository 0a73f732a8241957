/*
Package redblack provides a sorted set backed by a purely persistent
red-black tree.

Insertion never mutates an existing node; the changed path is rebuilt
algebraically (Okasaki-style balancing) and everything else is shared with
prior versions. Clone is therefore O(1) and needs no copy-on-write
bookkeeping at all, which makes the backend a useful structural-sharing
counterpart to the copy-on-write B-tree in package btree.
*/
package redblack

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
