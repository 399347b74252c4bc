package btree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a breadth-first traversal of the tree to w. Elements are
// formatted with %v and separated by a single space; there is no trailing
// space and no newline. Dump is meant for diagnostics and golden outputs and
// is not a persistent format.
func (t *Tree[T]) Dump(w io.Writer) error {
	ew := &errWriter{w: w}
	first := true
	for _, elems := range t.Levels() {
		for _, elem := range elems {
			if !first {
				ew.writeString(" ")
			}
			ew.printf("%v", elem)
			first = false
		}
		if ew.err != nil {
			break
		}
	}
	return ew.err
}

// String returns the breadth-first dump of the tree.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}

// errWriter remembers the first write error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
