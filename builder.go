package ordtree

import (
	"cmp"
	"slices"
)

// Builder stages elements and finalizes them into a Set.
//
// Builder collects elements without ordering them and materializes the set
// only when Set() is called. It then sorts and de-duplicates the staged
// elements and inserts them median-first, which keeps the resulting tree
// shallow regardless of the order elements were added in.
//
// The empty instance is a valid builder with default node capacity, but
// clients may use NewBuilder.
type Builder[T cmp.Ordered] struct {
	capacity int
	staged   []T

	done  bool
	dirty bool
	set   Set[T]
}

// NewBuilder creates a new and empty set builder. Trees of sets built will
// hold at most capacity elements per node; 0 selects the default.
func NewBuilder[T cmp.Ordered](capacity int) (*Builder[T], error) {
	if capacity < 0 {
		return nil, ErrIllegalArguments
	}
	return &Builder[T]{capacity: capacity}, nil
}

// Add stages elements for the set to build.
func (b *Builder[T]) Add(elems ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSetCompleted
	}
	if len(elems) > 0 {
		b.staged = append(b.staged, elems...)
		b.dirty = true
	}
	return nil
}

// Len returns the number of staged elements, duplicates included.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.staged)
}

// Set returns the set built from all staged elements.
//
// It is illegal to continue adding elements after Set has been called, but
// Set may be called multiple times.
func (b *Builder[T]) Set() Set[T] {
	if b == nil {
		return Set[T]{}
	}
	if b.dirty || b.set.IsVoid() {
		b.set = b.buildSet()
		b.dirty = false
	}
	b.done = true
	if b.set.Len() == 0 {
		tracer().Debugf("set builder: set is empty")
	}
	return b.set
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.set = Set[T]{}
}

func (b *Builder[T]) buildSet() Set[T] {
	s, err := NewSet[T](b.capacity)
	assert(err == nil, "builder: NewSet failed")
	elems := slices.Clone(b.staged)
	slices.Sort(elems)
	elems = slices.Compact(elems)
	for _, x := range medianOrder(elems) {
		s.tree.Insert(x)
	}
	tracer().Debugf("set builder: %d staged, %d unique, height %d", len(b.staged), s.Len(), s.tree.Height())
	return s
}

// medianOrder returns sorted in breadth-first median order: the median of the
// whole run first, then the medians of both halves, and so forth.
func medianOrder[T any](sorted []T) []T {
	out := make([]T, 0, len(sorted))
	type span struct{ lo, hi int }
	queue := []span{{0, len(sorted)}}
	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]
		if sp.lo >= sp.hi {
			continue
		}
		mid := sp.lo + (sp.hi-sp.lo)/2
		out = append(out, sorted[mid])
		queue = append(queue, span{sp.lo, mid}, span{mid + 1, sp.hi})
	}
	return out
}
