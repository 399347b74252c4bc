package btree

import (
	"cmp"
	"fmt"
	"slices"
)

// Tree is an in-memory ordered container of unique elements.
//
// A Tree owns all of its nodes. The zero value is not usable; create trees
// with New, NewOrdered or NewFunc.
type Tree[T any] struct {
	cfg    Config[T]
	nodes  *arena[T]
	root   nodeID // noNode means empty tree
	length int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newTree(cfg.normalized()), nil
}

// NewOrdered creates an empty tree for types supporting the '<' operator,
// storing at most capacity elements per node.
//
// It panics if capacity is not positive.
func NewOrdered[T cmp.Ordered](capacity int) *Tree[T] {
	return NewFunc(capacity, cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare, storing at most capacity
// elements per node.
//
// It panics if capacity is not positive or compare is nil.
func NewFunc[T any](capacity int, compare CompareFunc[T]) *Tree[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("btree: bad node capacity %d", capacity))
	}
	tree, err := New(Config[T]{MaxNodeElems: capacity, Compare: compare})
	if err != nil {
		panic(err.Error())
	}
	return tree
}

func newTree[T any](cfg Config[T]) *Tree[T] {
	return &Tree[T]{
		cfg:   cfg,
		nodes: newArena[T](),
		root:  noNode,
	}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Capacity returns the maximum number of elements per node.
func (t *Tree[T]) Capacity() int {
	return t.cfg.MaxNodeElems
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == noNode
}

// Height returns the number of nodes on the longest root-to-node path, where
// 0 means empty.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.heightOf(t.root)
}

func (t *Tree[T]) heightOf(id nodeID) int {
	n := t.nodes.at(id)
	h := 0
	for _, child := range n.children {
		if child != noNode {
			h = max(h, t.heightOf(child))
		}
	}
	return h + 1
}

// locate searches the tree for elem. It returns a cursor positioned at the
// matching element, or the end cursor and false.
func (t *Tree[T]) locate(elem T) (cursor[T], bool) {
	var path []int
	id := t.root
	for id != noNode {
		n := t.nodes.at(id)
		i, found := slices.BinarySearchFunc(n.elems, elem, t.cfg.Compare)
		path = append(path, i)
		if found {
			return cursor[T]{a: t.nodes, node: id, path: path, last: noNode}, true
		}
		if !n.hasChild(i) {
			break
		}
		id = n.children[i]
	}
	return t.endCursor(), false
}

// Find returns an iterator to the element equal to elem, or End() if there is
// no such element.
func (t *Tree[T]) Find(elem T) Iterator[T] {
	c, _ := t.locate(elem)
	return Iterator[T]{c: c}
}

// CFind is identical to Find, except that the returned iterator is read-only.
func (t *Tree[T]) CFind(elem T) ConstIterator[T] {
	c, _ := t.locate(elem)
	return ConstIterator[T]{c: c}
}

// Contains reports whether an element equal to elem is stored in the tree.
func (t *Tree[T]) Contains(elem T) bool {
	_, found := t.locate(elem)
	return found
}

// Get returns the stored element equal to elem, or (zeroValue, false).
func (t *Tree[T]) Get(elem T) (T, bool) {
	c, found := t.locate(elem)
	if !found {
		var zero T
		return zero, false
	}
	return *c.ref(), true
}

// Min returns the smallest element, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	c := t.beginCursor()
	return *c.ref(), true
}

// Max returns the largest element, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.IsEmpty() {
		var zero T
		return zero, false
	}
	c := t.endCursor()
	n := t.nodes.at(c.last)
	return n.elems[c.lastPath[len(c.lastPath)-1]], true
}

// Insert adds elem to the tree if no equal element is present.
//
// It returns an iterator positioned at the element equal to elem and true if
// elem has been added. If an equal element already exists, nothing is added
// and the iterator points to the existing element, together with false.
//
// Nodes are never split: elem goes into the first node on the search path
// that is not saturated. A saturated node passes elem down to the child slot
// at the insertion index, creating the child node if it is absent.
//
// Inserting may invalidate iterators into the tree.
func (t *Tree[T]) Insert(elem T) (Iterator[T], bool) {
	if c, found := t.locate(elem); found {
		return Iterator[T]{c: c}, false
	}
	if t.root == noNode {
		t.root = t.nodes.alloc(noNode)
		tracer().Debugf("btree: materialized root node")
	}
	var path []int
	id := t.root
	for {
		n := t.nodes.at(id)
		i, found := slices.BinarySearchFunc(n.elems, elem, t.cfg.Compare)
		assert(!found, "insert descended into node holding the element")
		if len(n.elems) < t.cfg.MaxNodeElems {
			if len(n.children) > 0 {
				assert(n.children[i] == noNode, "insert into node would split a materialized subtree")
				insertAt(&n.children, i, noNode)
			}
			insertAt(&n.elems, i, elem)
			t.length++
			path = append(path, i)
			return Iterator[T]{c: cursor[T]{a: t.nodes, node: id, path: path, last: noNode}}, true
		}
		if len(n.children) == 0 {
			n.children = make([]nodeID, len(n.elems)+1)
			for k := range n.children {
				n.children[k] = noNode
			}
		}
		if n.children[i] == noNode {
			child := t.nodes.alloc(id)
			n.children[i] = child
			tracer().Debugf("btree: materialized node #%d in slot %d of node #%d", child, i, id)
		}
		path = append(path, i)
		id = n.children[i]
	}
}

// InsertAll inserts every element of elems and returns how many of them have
// been added.
func (t *Tree[T]) InsertAll(elems ...T) int {
	var count int
	for _, elem := range elems {
		if _, ok := t.Insert(elem); ok {
			count++
		}
	}
	return count
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a deep copy of the tree. Every node is duplicated and parent
// links of the copy refer to the copied nodes. Elements are copied by
// assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	clone := newTree(t.cfg)
	clone.length = t.length
	if t.root != noNode {
		clone.root = clone.copySubtree(t.nodes, t.root, noNode)
	}
	tracer().Debugf("btree: cloned tree of %d nodes", clone.nodes.size())
	return clone
}

// copySubtree duplicates node id of arena src and its whole subtree into t,
// attaching the copy to parent.
func (t *Tree[T]) copySubtree(src *arena[T], id nodeID, parent nodeID) nodeID {
	from := src.at(id)
	cid := t.nodes.alloc(parent)
	to := t.nodes.at(cid)
	to.elems = slices.Clone(from.elems)
	if len(from.children) > 0 {
		to.children = make([]nodeID, len(from.children))
		for i, child := range from.children {
			to.children[i] = noNode
			if child != noNode {
				to.children[i] = t.copySubtree(src, child, cid)
			}
		}
	}
	return cid
}

// CopyFrom replaces the contents of t with a deep copy of src, including its
// configuration. Iterators into t are invalidated.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	assert(src != nil, "copy from nil tree")
	if t == src {
		return
	}
	*t = *src.Clone()
}

// Move transfers the contents of t to a new tree and leaves t empty.
// Iterators into t must not be used afterwards.
func (t *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{
		cfg:    t.cfg,
		nodes:  t.nodes,
		root:   t.root,
		length: t.length,
	}
	t.reset()
	return moved
}

// MoveFrom replaces the contents of t with the contents of src, including its
// configuration, and leaves src empty.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	assert(src != nil, "move from nil tree")
	if t == src {
		return
	}
	t.cfg = src.cfg
	t.nodes, t.root, t.length = src.nodes, src.root, src.length
	src.reset()
}

// reset drops all nodes. A fresh arena gives the emptied tree a new identity,
// so its iterators never compare equal to iterators created before.
func (t *Tree[T]) reset() {
	t.nodes = newArena[T]()
	t.root = noNode
	t.length = 0
}
