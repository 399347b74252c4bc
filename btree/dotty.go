package btree

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the internal node structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent child slots of a node are drawn as empty
// circles.
func (t *Tree[T]) Dot(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.writeString("strict digraph {\n")
	ew.writeString("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.IsEmpty() {
		var nodelist, edgelist strings.Builder
		t.dotNode(t.root, 0, &nodelist, &edgelist)
		ew.writeString(nodelist.String())
		ew.writeString(edgelist.String())
	}
	ew.writeString("}\n")
	return ew.err
}

func (t *Tree[T]) dotNode(id nodeID, depth int, nodelist, edgelist *strings.Builder) {
	n := t.nodes.at(id)
	labels := make([]string, len(n.elems))
	for i, elem := range n.elems {
		labels[i] = fmt.Sprintf("%v", elem)
	}
	fmt.Fprintf(nodelist, "\"%d\" [label=\"%s\" %s];\n", id, dotEscape(strings.Join(labels, " ")),
		nodeDotStyles(depth))
	for i, child := range n.children {
		if child == noNode {
			// ids of absent slots are derived from the parent's id and never
			// clash with arena ids, which are non-negative
			nilid := fmt.Sprintf("nil%d_%d", id, i)
			fmt.Fprintf(nodelist, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(edgelist, "\"%d\" -> \"%s\";\n", id, nilid)
			continue
		}
		fmt.Fprintf(edgelist, "\"%d\" -> \"%d\";\n", id, child)
		t.dotNode(child, depth+1, nodelist, edgelist)
	}
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(depth int) string {
	s := ",style=filled,shape=box"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	return s
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
