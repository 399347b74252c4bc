package btree

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDumpLevelOrder(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := NewOrdered[int](2)
	if s := tree.String(); s != "" {
		t.Fatalf("empty tree dumps %q", s)
	}
	tree.InsertAll(3, 5, 1, 4, 6, 2, 7)
	var buf bytes.Buffer
	if err := tree.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3 5 1 2 4 6 7" {
		t.Errorf("dump = %q", buf.String())
	}
	var levels []string
	for depth, elems := range tree.Levels() {
		levels = append(levels, fmt.Sprintf("%d:%v", depth, elems))
	}
	if got := strings.Join(levels, " "); got != "0:[3 5] 1:[1 2] 1:[4] 1:[6 7]" {
		t.Errorf("levels = %s", got)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestDumpReportsWriteErrors(t *testing.T) {
	tree := intTree(t, 2, 1, 2, 3)
	if err := tree.Dump(failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
	if err := tree.Dot(failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error from Dot, got %v", err)
	}
}

func TestDot(t *testing.T) {
	tree := intTree(t, 2, 3, 5, 1, 6)
	var buf bytes.Buffer
	if err := tree.Dot(&buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	for _, want := range []string{"strict digraph {", `[label="3 5"`, `[label="1"`, `"0" -> "1";`, `"0" -> "nil0_1";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output lacks %q", want)
		}
	}
	buf.Reset()
	if err := NewOrdered[int](2).Dot(&buf); err != nil || !strings.HasSuffix(buf.String(), "}\n") {
		t.Errorf("DOT of empty tree: %q, %v", buf.String(), err)
	}
}

func TestFingerprint(t *testing.T) {
	tree := intTree(t, 2, 3, 5, 1, 4, 6, 2)
	clone := tree.Clone()
	if tree.Fingerprint() != clone.Fingerprint() {
		t.Fatalf("clone has different fingerprint")
	}
	// same elements, different shape
	other := intTree(t, 2, 1, 2, 3, 4, 5, 6)
	if tree.Fingerprint() == other.Fingerprint() {
		t.Errorf("differently shaped trees share a fingerprint")
	}
	clone.Insert(7)
	if tree.Fingerprint() == clone.Fingerprint() {
		t.Errorf("fingerprint did not change after insert")
	}
	if NewOrdered[int](2).Fingerprint() != NewOrdered[int](5).Fingerprint() {
		t.Errorf("empty trees should share a fingerprint")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(tree *Tree[int])
	}{
		{"unsorted", func(tree *Tree[int]) {
			root := tree.nodes.at(tree.root)
			root.elems[0], root.elems[1] = root.elems[1], root.elems[0]
		}},
		{"parent link", func(tree *Tree[int]) {
			root := tree.nodes.at(tree.root)
			tree.nodes.at(root.children[0]).parent = root.children[1]
		}},
		{"slot arity", func(tree *Tree[int]) {
			root := tree.nodes.at(tree.root)
			root.children = root.children[:1]
		}},
		{"subtree range", func(tree *Tree[int]) {
			root := tree.nodes.at(tree.root)
			tree.nodes.at(root.children[0]).elems[0] = 100
		}},
		{"length", func(tree *Tree[int]) {
			tree.length++
		}},
		{"unreachable node", func(tree *Tree[int]) {
			tree.nodes.alloc(noNode)
		}},
	}
	for _, c := range cases {
		tree := intTree(t, 2, 3, 5, 1, 4, 6, 2)
		c.corrupt(tree)
		if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
			t.Errorf("%s: expected ErrCorruptTree, got %v", c.name, err)
		}
	}
}

func ExampleTree() {
	tree := NewOrdered[int](2)
	for _, n := range []int{3, 5, 1, 4, 6, 2} {
		tree.Insert(n)
	}
	fmt.Println("len:  ", tree.Len())
	fmt.Println("dump: ", tree)
	var elems []int
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		elems = append(elems, it.Value())
	}
	fmt.Println(elems)
	_, ok := tree.Insert(4)
	fmt.Println("insert 4 again:", ok)
	fmt.Println("find 9 is end: ", tree.Find(9).Equal(tree.End()))
	// Output:
	// len:   6
	// dump:  3 5 1 2 4 6
	// [1 2 3 4 5 6]
	// insert 4 again: false
	// find 9 is end:  true
}

func TestDotEscapesLabels(t *testing.T) {
	tree := NewOrdered[string](3)
	tree.InsertAll(`dir\`, `say "hi"`)
	var buf bytes.Buffer
	if err := tree.Dot(&buf); err != nil {
		t.Fatal(err)
	}
	want := `[label="dir\\ say \"hi\""`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("DOT output lacks %s:\n%s", want, buf.String())
	}
}
