package btree

import (
	"cmp"
	"fmt"
)

// DefaultMaxNodeElems is the node capacity used when a Config leaves
// MaxNodeElems unset.
const DefaultMaxNodeElems = 40

// CompareFunc defines the total order of elements. It returns a negative
// number if a < b, zero if a == b and a positive number if a > b.
type CompareFunc[T any] func(a, b T) int

// Config configures an ordered tree.
type Config[T any] struct {
	// MaxNodeElems is the maximum number of elements stored in a single node.
	// Zero selects DefaultMaxNodeElems; negative values are rejected.
	MaxNodeElems int
	// Compare orders elements. It is required.
	Compare CompareFunc[T]
}

// OrderedConfig returns a configuration for types supporting the '<' operator.
func OrderedConfig[T cmp.Ordered](maxNodeElems int) Config[T] {
	return Config[T]{
		MaxNodeElems: maxNodeElems,
		Compare:      cmp.Compare[T],
	}
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.MaxNodeElems == 0 {
		cfg.MaxNodeElems = DefaultMaxNodeElems
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxNodeElems <= 0 {
		return fmt.Errorf("%w: node capacity must be positive, is %d", ErrInvalidConfig, cfg.MaxNodeElems)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
