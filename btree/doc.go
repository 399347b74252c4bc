/*
Package btree provides an in-memory ordered container organized as a B-tree
of unique, comparable elements.

Every node holds a sorted run of up to `MaxNodeElems` elements and, once it is
saturated, one child slot per gap between its elements. Unlike a classical
B-tree, nodes are never split or merged: a new element is appended to the first
non-saturated node met on the search path from the root, and a saturated node
hands the element down into the child slot at the insertion index,
materializing that child if necessary. The tree therefore grows by chaining
through always-full ancestors. Under adversarial insertion orders (e.g. sorted
input) the tree degenerates into a chain; clients wanting shallow trees should
insert median-first (see package ordtree's Builder).

Iteration is cursor-based. An iterator records the node it points to and the
path of slot indices from the root, and walks up and down the tree using
parent back-links. The position one past the last element is an explicit end
state, which remembers the last element's position so that decrementing from
the end is well defined:

	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		fmt.Println(it.Value())
	}

Iterators come in a mutable (Iterator) and a read-only (ConstIterator) flavor.
Mutable iterators freeze into read-only ones with Const; the two compare by
node identity and path. Reverse iterators adapt either kind.

Trees have value semantics on request: Clone deep-copies every node and
re-links parents to the copies; Move transfers ownership and leaves the source
empty.

Nodes live in a per-tree arena and refer to their parent by arena slot id,
so the only owning direction is parent to child.

The container is not safe for concurrent use. Inserting may invalidate live
iterators; re-validate them with Find.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
