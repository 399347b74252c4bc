package ordtree

import (
	"cmp"
	"iter"
	"slices"

	"github.com/npillmayer/ordtree/btree"
)

// Set is a sorted set of unique values. The zero value is not usable; create
// sets with NewSet, SetOf or a Builder.
//
// Sets are not safe for concurrent use.
type Set[T cmp.Ordered] struct {
	tree *btree.Tree[T]
}

// NewSet creates an empty set whose tree nodes hold at most capacity
// elements. A capacity of 0 selects btree.DefaultMaxNodeElems.
func NewSet[T cmp.Ordered](capacity int) (Set[T], error) {
	if capacity < 0 {
		return Set[T]{}, ErrIllegalArguments
	}
	tree, err := btree.New(btree.OrderedConfig[T](capacity))
	if err != nil {
		return Set[T]{}, err
	}
	return Set[T]{tree: tree}, nil
}

// SetOf creates a set holding elems, inserted in the order given.
// It panics if capacity is negative.
func SetOf[T cmp.Ordered](capacity int, elems ...T) Set[T] {
	s, err := NewSet[T](capacity)
	if err != nil {
		panic(err)
	}
	s.tree.InsertAll(elems...)
	return s
}

// IsVoid reports whether s has been created by one of the constructors.
func (s Set[T]) IsVoid() bool {
	return s.tree == nil
}

// Add inserts x and reports whether it was not present before.
func (s Set[T]) Add(x T) bool {
	assert(!s.IsVoid(), "add to void set")
	_, ok := s.tree.Insert(x)
	return ok
}

// Contains reports whether x is an element of s.
func (s Set[T]) Contains(x T) bool {
	if s.IsVoid() {
		return false
	}
	return s.tree.Contains(x)
}

// Len returns the number of elements in s.
func (s Set[T]) Len() int {
	if s.IsVoid() {
		return 0
	}
	return s.tree.Len()
}

// Min returns the smallest element, if any.
func (s Set[T]) Min() (T, bool) {
	if s.IsVoid() {
		var zero T
		return zero, false
	}
	return s.tree.Min()
}

// Max returns the largest element, if any.
func (s Set[T]) Max() (T, bool) {
	if s.IsVoid() {
		var zero T
		return zero, false
	}
	return s.tree.Max()
}

// Items returns an iterator over the elements in ascending order.
func (s Set[T]) Items() iter.Seq[T] {
	if s.IsVoid() {
		return func(func(T) bool) {}
	}
	return s.tree.All()
}

// Reversed returns an iterator over the elements in descending order.
func (s Set[T]) Reversed() iter.Seq[T] {
	if s.IsVoid() {
		return func(func(T) bool) {}
	}
	return s.tree.Backward()
}

// Slice returns the elements in ascending order.
func (s Set[T]) Slice() []T {
	return slices.Collect(s.Items())
}

// Copy returns a deep copy of s. Adding to the copy does not affect s.
func (s Set[T]) Copy() Set[T] {
	if s.IsVoid() {
		return s
	}
	return Set[T]{tree: s.tree.Clone()}
}

// Tree exposes the tree backing s, e.g. for iterator-level access.
func (s Set[T]) Tree() *btree.Tree[T] {
	return s.tree
}

// String returns the breadth-first level dump of the backing tree.
func (s Set[T]) String() string {
	if s.IsVoid() {
		return ""
	}
	return s.tree.String()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
