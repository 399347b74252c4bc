package btree

import "fmt"

// Check validates structural tree invariants:
//   - every node holds between 1 and MaxNodeElems elements, sorted strictly,
//   - a node carries either no child slots or exactly one more than elements,
//     and only saturated nodes carry child slots,
//   - every child links back to its parent,
//   - every subtree lies strictly between the elements enclosing its slot,
//   - every node of the arena is reachable from the root exactly once,
//   - the element count matches Len.
//
// Check is meant to be used in tests and diagnostics.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == noNode {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree must have length 0, has %d", ErrCorruptTree, t.length)
		}
		return nil
	}
	if p := t.nodes.at(t.root).parent; p != noNode {
		return fmt.Errorf("%w: root has parent #%d", ErrCorruptTree, p)
	}
	visited := make(map[nodeID]bool, t.nodes.size())
	count, err := t.checkNode(t.root, nil, nil, visited)
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrCorruptTree, count, t.length)
	}
	if len(visited) != t.nodes.size() {
		return fmt.Errorf("%w: %d of %d nodes unreachable", ErrCorruptTree,
			t.nodes.size()-len(visited), t.nodes.size())
	}
	return nil
}

// checkNode validates the subtree at id, whose elements must lie strictly
// between lo and hi (nil meaning unbounded). It returns the subtree's element
// count.
func (t *Tree[T]) checkNode(id nodeID, lo, hi *T, visited map[nodeID]bool) (int, error) {
	if id < 0 || int(id) >= t.nodes.size() {
		return 0, fmt.Errorf("%w: node id #%d outside of arena", ErrCorruptTree, id)
	}
	if visited[id] {
		return 0, fmt.Errorf("%w: node #%d reachable twice", ErrCorruptTree, id)
	}
	visited[id] = true
	n := t.nodes.at(id)
	if len(n.elems) == 0 || len(n.elems) > t.cfg.MaxNodeElems {
		return 0, fmt.Errorf("%w: node #%d holds %d elements, capacity %d",
			ErrCorruptTree, id, len(n.elems), t.cfg.MaxNodeElems)
	}
	cmp := t.cfg.Compare
	for i := range n.elems {
		if i > 0 && cmp(n.elems[i-1], n.elems[i]) >= 0 {
			return 0, fmt.Errorf("%w: node #%d unsorted at index %d", ErrCorruptTree, id, i)
		}
		if lo != nil && cmp(*lo, n.elems[i]) >= 0 || hi != nil && cmp(n.elems[i], *hi) >= 0 {
			return 0, fmt.Errorf("%w: node #%d element %d out of subtree range", ErrCorruptTree, id, i)
		}
	}
	count := len(n.elems)
	if len(n.children) == 0 {
		return count, nil
	}
	if len(n.children) != len(n.elems)+1 {
		return 0, fmt.Errorf("%w: node #%d has %d child slots for %d elements",
			ErrCorruptTree, id, len(n.children), len(n.elems))
	}
	if len(n.elems) < t.cfg.MaxNodeElems {
		return 0, fmt.Errorf("%w: unsaturated node #%d has child slots", ErrCorruptTree, id)
	}
	for i, child := range n.children {
		if child == noNode {
			continue
		}
		if p := t.nodes.at(child).parent; p != id {
			return 0, fmt.Errorf("%w: node #%d links to parent #%d instead of #%d",
				ErrCorruptTree, child, p, id)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.elems[i-1]
		}
		if i < len(n.elems) {
			chi = &n.elems[i]
		}
		c, err := t.checkNode(child, clo, chi, visited)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}
