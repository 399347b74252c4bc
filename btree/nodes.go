package btree

// nodeID addresses a node within its tree's arena.
type nodeID int32

// noNode marks an absent child slot, a missing parent or an empty tree.
const noNode nodeID = -1

// node holds a sorted run of elements and, once materialized, one child slot
// per gap between elements.
//
// It must at all times maintain the invariant that either
//   - len(children) == 0, or
//   - len(children) == len(elems) + 1,
//
// where any child slot may be noNode.
type node[T any] struct {
	elems    []T
	children []nodeID
	// parent is a lookup key into the arena, not an ownership relation.
	parent nodeID
}

// hasChild reports whether child slot i holds a materialized subtree.
func (n *node[T]) hasChild(i int) bool {
	return i >= 0 && i < len(n.children) && n.children[i] != noNode
}

// arena owns all nodes of a tree. Node ids are stable for the lifetime of the
// arena, as nodes are never removed.
type arena[T any] struct {
	nodes []*node[T]
}

func newArena[T any]() *arena[T] {
	return &arena[T]{}
}

func (a *arena[T]) alloc(parent nodeID) nodeID {
	id := nodeID(len(a.nodes))
	a.nodes = append(a.nodes, &node[T]{parent: parent})
	return id
}

func (a *arena[T]) at(id nodeID) *node[T] {
	assert(id >= 0 && int(id) < len(a.nodes), "node id outside of arena")
	return a.nodes[id]
}

func (a *arena[T]) size() int {
	return len(a.nodes)
}

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func insertAt[S ~[]E, E any](s *S, index int, value E) {
	var zero E
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = value
}
