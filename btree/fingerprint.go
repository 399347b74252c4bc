package btree

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a hash over the tree's shape and contents. Two trees
// with equal fingerprints have, with high probability, the same nodes holding
// the same elements (formatted with %v) in the same child slots. Clones have
// the fingerprint of their source.
func (t *Tree[T]) Fingerprint() uint64 {
	d := xxhash.New()
	if !t.IsEmpty() {
		t.hashNode(d, t.root)
	}
	return d.Sum64()
}

func (t *Tree[T]) hashNode(d *xxhash.Digest, id nodeID) {
	n := t.nodes.at(id)
	fmt.Fprintf(d, "(%d:", len(n.elems))
	for _, elem := range n.elems {
		fmt.Fprintf(d, "%v,", elem)
	}
	for _, child := range n.children {
		if child == noNode {
			_, _ = d.WriteString("-")
			continue
		}
		t.hashNode(d, child)
	}
	_, _ = d.WriteString(")")
}
