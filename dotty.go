package ordtree

import (
	"cmp"
	"io"
)

// Dot outputs the internal node structure of a set's tree in Graphviz DOT
// format (for debugging purposes).
func Dot[E cmp.Ordered](s Set[E], w io.Writer) {
	if s.IsVoid() {
		if _, err := io.WriteString(w, "strict digraph {\n}\n"); err != nil {
			T().Errorf("set DOT: %s", err.Error())
		}
		return
	}
	if err := s.tree.Dot(w); err != nil {
		T().Errorf("set DOT: %s", err.Error())
	}
}
