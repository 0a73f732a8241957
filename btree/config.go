package btree

import (
	"fmt"
	"unsafe"
)

const (
	// MinDefaultOrder is the lower clamp for the size-derived default order.
	MinDefaultOrder = 16
	// minExplicitOrder is the smallest fanout for which splitting produces
	// two non-empty halves around a separator.
	minExplicitOrder = 3
	// defaultStorageBudget approximates one quarter of a 32 KB L1 data
	// cache. Element storage of a node should fit this budget.
	defaultStorageBudget = (32 << 10) / 4
)

// Config configures a sorted-set B-tree.
type Config[T any] struct {
	// Compare is the total order over elements. It returns a negative
	// value if a sorts before b, zero if they are equal, positive
	// otherwise.
	Compare func(a, b T) int
	// Order is the maximum child fanout of internal nodes; nodes hold at
	// most Order-1 elements. Zero selects a size-based default.
	Order int
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Order == 0 {
		cfg.Order = defaultOrder[T]()
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if cfg.Order != 0 && cfg.Order < minExplicitOrder {
		return fmt.Errorf("%w: order must be >= %d", ErrInvalidConfig, minExplicitOrder)
	}
	return nil
}

// defaultOrder sizes nodes so that element storage of a full node fits the
// fixed cache budget. This is a tuning choice, not a correctness requirement;
// any order >= minExplicitOrder yields a correct tree.
func defaultOrder[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	order := defaultStorageBudget / size
	if order < MinDefaultOrder {
		order = MinDefaultOrder
	}
	return order
}
