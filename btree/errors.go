package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvalidStructure signals a violated structural invariant, as
	// detected by Check. Seeing it means a tree algorithm bug, not an
	// input error.
	ErrInvalidStructure = errors.New("btree: structural invariant violated")
)
