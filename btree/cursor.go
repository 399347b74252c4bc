package btree

import "slices"

// cursor is the position state shared by all iterator kinds.
//
// A cursor is either valid or at the end. A valid cursor points to element
// path[len(path)-1] of node, and path[k] for every k < len(path)-1 holds the
// child slot taken at depth k on the way down from the root.
//
// At the end, node is noNode and path is nil. last and lastPath then hold the
// position of the last element of the tree (noNode/nil for an empty tree), so
// that decrementing the end is well defined.
//
// Copies of a cursor may share path storage. Every move therefore works on a
// private copy of the path, leaving other copies untouched.
type cursor[T any] struct {
	a        *arena[T]
	node     nodeID
	path     []int
	last     nodeID
	lastPath []int
}

func (c *cursor[T]) atEnd() bool {
	return c.node == noNode
}

func (c *cursor[T]) index() int {
	return c.path[len(c.path)-1]
}

func (c *cursor[T]) ref() *T {
	assert(!c.atEnd(), "dereferencing end iterator")
	n := c.a.at(c.node)
	i := c.index()
	assert(i >= 0 && i < len(n.elems), "iterator index outside of node")
	return &n.elems[i]
}

func (c cursor[T]) clone() cursor[T] {
	c.path = slices.Clone(c.path)
	c.lastPath = slices.Clone(c.lastPath)
	return c
}

func (c *cursor[T]) equal(other *cursor[T]) bool {
	if c.a != other.a || c.node != other.node {
		return false
	}
	if c.atEnd() {
		return c.last == other.last && slices.Equal(c.lastPath, other.lastPath)
	}
	return slices.Equal(c.path, other.path)
}

func (c *cursor[T]) setEnd() {
	c.last, c.lastPath = c.node, c.path
	c.node, c.path = noNode, nil
}

// next moves to the in-order successor.
func (c *cursor[T]) next() {
	assert(!c.atEnd(), "advancing end iterator")
	c.path = slices.Clone(c.path)
	n := c.a.at(c.node)
	i := c.index()
	if n.hasChild(i + 1) {
		c.path[len(c.path)-1] = i + 1
		c.node = n.children[i+1]
		c.path = append(c.path, 0)
		c.descendLeftmost()
		return
	}
	if i+1 < len(n.elems) {
		c.path[len(c.path)-1] = i + 1
		return
	}
	// Node exhausted: climb until an ancestor has an element right of the
	// slot we came from.
	id, depth := c.node, len(c.path)-1
	for {
		parent := c.a.at(id).parent
		if parent == noNode {
			c.setEnd()
			return
		}
		depth--
		if slot := c.path[depth]; slot < len(c.a.at(parent).elems) {
			c.node = parent
			c.path = c.path[:depth+1]
			return
		}
		id = parent
	}
}

// prev moves to the in-order predecessor.
func (c *cursor[T]) prev() {
	if c.atEnd() {
		assert(c.last != noNode, "decrementing end iterator of empty tree")
		c.node, c.path = c.last, slices.Clone(c.lastPath)
		c.last, c.lastPath = noNode, nil
		return
	}
	c.path = slices.Clone(c.path)
	n := c.a.at(c.node)
	i := c.index()
	if n.hasChild(i) {
		c.node = n.children[i]
		c.path = append(c.path, 0)
		c.descendRightmost()
		return
	}
	if i > 0 {
		c.path[len(c.path)-1] = i - 1
		return
	}
	// Leftmost element of node: climb past levels entered through slot 0.
	id, depth := c.node, len(c.path)-1
	for {
		parent := c.a.at(id).parent
		assert(parent != noNode, "decrementing begin iterator")
		depth--
		if slot := c.path[depth]; slot > 0 {
			c.node = parent
			c.path = c.path[:depth+1]
			c.path[depth] = slot - 1
			return
		}
		id = parent
	}
}

// descendLeftmost follows leftmost present children from the current
// position, which must be at element 0 of its node.
func (c *cursor[T]) descendLeftmost() {
	for {
		n := c.a.at(c.node)
		if !n.hasChild(0) {
			return
		}
		c.node = n.children[0]
		c.path = append(c.path, 0)
	}
}

// descendRightmost follows rightmost present children and stops at the last
// element of the first node without a rightmost child.
func (c *cursor[T]) descendRightmost() {
	for {
		n := c.a.at(c.node)
		k := len(n.elems)
		if n.hasChild(k) {
			c.path[len(c.path)-1] = k
			c.node = n.children[k]
			c.path = append(c.path, 0)
			continue
		}
		c.path[len(c.path)-1] = k - 1
		return
	}
}

// beginCursor returns a cursor at the smallest element, or the end cursor.
func (t *Tree[T]) beginCursor() cursor[T] {
	if t.root == noNode {
		return t.endCursor()
	}
	c := cursor[T]{a: t.nodes, node: t.root, path: []int{0}, last: noNode}
	c.descendLeftmost()
	return c
}

// endCursor returns the end cursor, remembering the largest element.
func (t *Tree[T]) endCursor() cursor[T] {
	c := cursor[T]{a: t.nodes, node: noNode, last: noNode}
	if t.root == noNode {
		return c
	}
	c.node, c.path = t.root, []int{0}
	c.descendRightmost()
	c.setEnd()
	return c
}
