package btree

import (
	"iter"
	"slices"
)

// All returns an iterator over all elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		for c := t.beginCursor(); !c.atEnd(); c.next() {
			if !yield(*c.ref()) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		c := t.endCursor()
		for range t.length {
			c.prev()
			if !yield(*c.ref()) {
				return
			}
		}
	}
}

// Ascend calls fn for every element in ascending order, until fn returns false.
func (t *Tree[T]) Ascend(fn func(elem T) bool) {
	if fn == nil {
		return
	}
	for elem := range t.All() {
		if !fn(elem) {
			return
		}
	}
}

// Descend calls fn for every element in descending order, until fn returns false.
func (t *Tree[T]) Descend(fn func(elem T) bool) {
	if fn == nil {
		return
	}
	for elem := range t.Backward() {
		if !fn(elem) {
			return
		}
	}
}

// Levels walks the nodes breadth-first, yielding each node's depth (0 for the
// root) together with a copy of its elements.
func (t *Tree[T]) Levels() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if t.IsEmpty() {
			return
		}
		type entry struct {
			id    nodeID
			depth int
		}
		queue := []entry{{id: t.root}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			n := t.nodes.at(e.id)
			for _, child := range n.children {
				if child != noNode {
					queue = append(queue, entry{id: child, depth: e.depth + 1})
				}
			}
			if !yield(e.depth, slices.Clone(n.elems)) {
				return
			}
		}
	}
}
