package btree

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func redirectTracing(t *testing.T) func() {
	t.Helper()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func collect[T any](tree *Tree[T]) []T {
	var out []T
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func intTree(t *testing.T, capacity int, elems ...int) *Tree[int] {
	t.Helper()
	tree := NewOrdered[int](capacity)
	for _, e := range elems {
		tree.Insert(e)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after setup: %v", err)
	}
	return tree
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{MaxNodeElems: 4})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing compare, got %v", err)
	}
	_, err = New(OrderedConfig[int](-1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
}

func TestNewNormalizesCapacity(t *testing.T) {
	tree, err := New(OrderedConfig[string](0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Capacity() != DefaultMaxNodeElems {
		t.Fatalf("expected default capacity %d, got %d", DefaultMaxNodeElems, tree.Capacity())
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected state of new tree: len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestNewOrderedPanicsOnBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for capacity %d", capacity)
				}
			}()
			NewOrdered[int](capacity)
		}()
	}
}

func TestInsertScenario(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := NewOrdered[int](2)
	for _, n := range []int{3, 5, 1, 4, 6, 2} {
		if _, ok := tree.Insert(n); !ok {
			t.Errorf("expected %d to be inserted", n)
		}
	}
	if got := collect(tree); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("in-order traversal = %v", got)
	}
	if s := tree.String(); s != "3 5 1 2 4 6" {
		t.Errorf("level dump = %q, want %q", s, "3 5 1 2 4 6")
	}
	if it := tree.Find(4); it.AtEnd() || it.Value() != 4 {
		t.Errorf("expected to find 4")
	}
	if it := tree.Find(9); !it.Equal(tree.End()) {
		t.Errorf("expected find(9) to return end")
	}
	if tree.Height() != 2 {
		t.Errorf("expected height 2, got %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertRejectsDuplicates(t *testing.T) {
	tree := intTree(t, 3, 10, 20, 30, 40, 5)
	before := collect(tree)
	it, ok := tree.Insert(20)
	if ok {
		t.Fatalf("duplicate insert reported as inserted")
	}
	if it.Value() != 20 || !it.Equal(tree.Find(20)) {
		t.Fatalf("duplicate insert should point to existing element")
	}
	if after := collect(tree); !slices.Equal(before, after) || tree.Len() != len(before) {
		t.Fatalf("duplicate insert changed tree: %v -> %v", before, after)
	}
}

func TestInsertReturnsIteratorToNewElement(t *testing.T) {
	tree := NewOrdered[string](2)
	for _, w := range strings.Fields("pear apple fig kiwi banana cherry") {
		it, ok := tree.Insert(w)
		if !ok || it.Value() != w {
			t.Fatalf("insert(%q) returned %v/%v", w, ok, it.Value())
		}
		if !it.Equal(tree.Find(w)) {
			t.Fatalf("insert(%q) iterator differs from find", w)
		}
	}
	if tree.InsertAll("fig", "plum", "apple") != 1 {
		t.Errorf("expected InsertAll to add exactly one new element")
	}
}

func TestOrderAndFindRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, capacity := range []int{1, 2, 3, 7, 40} {
		tree := NewOrdered[int](capacity)
		inserted := map[int]bool{}
		for range 500 {
			v := r.Intn(800)
			_, ok := tree.Insert(v)
			if ok == inserted[v] {
				t.Fatalf("capacity %d: insert(%d) = %v, already present = %v", capacity, v, ok, inserted[v])
			}
			inserted[v] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("capacity %d: %v", capacity, err)
		}
		got := collect(tree)
		if len(got) != len(inserted) || tree.Len() != len(inserted) {
			t.Fatalf("capacity %d: traversal has %d elements, want %d", capacity, len(got), len(inserted))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Fatalf("capacity %d: traversal not strictly increasing at %d: %v", capacity, i, got[i-1:i+1])
			}
		}
		for v := range 800 {
			it := tree.Find(v)
			if inserted[v] && (it.AtEnd() || it.Value() != v) {
				t.Fatalf("capacity %d: find(%d) failed", capacity, v)
			}
			if !inserted[v] && !it.Equal(tree.End()) {
				t.Fatalf("capacity %d: find(%d) should be end", capacity, v)
			}
			if tree.Contains(v) != inserted[v] {
				t.Fatalf("capacity %d: contains(%d) != %v", capacity, v, inserted[v])
			}
		}
	}
}

func TestSortedInputDegeneratesIntoChain(t *testing.T) {
	tree := intTree(t, 2)
	for i := range 10 {
		tree.Insert(i)
	}
	if tree.Height() != 5 {
		t.Errorf("expected chain of height 5, got %d", tree.Height())
	}
	if min, ok := tree.Min(); !ok || min != 0 {
		t.Errorf("min = %d/%v", min, ok)
	}
	if max, ok := tree.Max(); !ok || max != 9 {
		t.Errorf("max = %d/%v", max, ok)
	}
}

func TestGetReturnsStoredElement(t *testing.T) {
	type entry struct {
		key   int
		value string
	}
	tree := NewFunc(2, func(a, b entry) int { return a.key - b.key })
	tree.Insert(entry{1, "one"})
	tree.Insert(entry{2, "two"})
	e, ok := tree.Get(entry{key: 2})
	if !ok || e.value != "two" {
		t.Fatalf("get = %+v/%v", e, ok)
	}
	if _, ok := tree.Get(entry{key: 3}); ok {
		t.Fatalf("get of absent key succeeded")
	}
}

func TestCloneRoundTrip(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := intTree(t, 3, rand.Perm(100)...)
	clone := tree.Clone()
	if err := clone.Check(); err != nil {
		t.Fatalf("clone invalid: %v", err)
	}
	if !slices.Equal(collect(tree), collect(clone)) {
		t.Fatalf("clone traversal differs")
	}
	if tree.String() != clone.String() {
		t.Fatalf("clone level dump differs")
	}
	clone.Insert(1000)
	clone.Insert(-5)
	if tree.Len() != 100 || tree.Contains(1000) || tree.Contains(-5) {
		t.Fatalf("mutating the clone changed the source")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("source invalid after mutating clone: %v", err)
	}
}

func TestCloneRelinksParents(t *testing.T) {
	tree := intTree(t, 1, 5, 3, 8, 1, 4)
	clone := tree.Clone()
	if clone.nodes == tree.nodes {
		t.Fatalf("clone shares arena with source")
	}
	for id, n := range clone.nodes.nodes {
		for _, child := range n.children {
			if child != noNode && clone.nodes.at(child).parent != nodeID(id) {
				t.Fatalf("child #%d of clone does not link back to #%d", child, id)
			}
		}
	}
}

func TestCopyFrom(t *testing.T) {
	src := intTree(t, 2, 1, 2, 3)
	dst := intTree(t, 5, 7, 8)
	dst.CopyFrom(src)
	if !slices.Equal(collect(dst), []int{1, 2, 3}) || dst.Capacity() != 2 {
		t.Fatalf("copy assignment failed: %v cap=%d", collect(dst), dst.Capacity())
	}
	dst.CopyFrom(dst)
	if dst.Len() != 3 {
		t.Fatalf("self copy changed tree")
	}
	dst.Insert(4)
	if src.Contains(4) {
		t.Fatalf("copy aliases source")
	}
}

func TestMoveEmptiesSource(t *testing.T) {
	tree := intTree(t, 2, 3, 5, 1, 4, 6, 2)
	before := collect(tree)
	moved := tree.Move()
	if !tree.IsEmpty() || tree.Len() != 0 || !tree.Begin().Equal(tree.End()) {
		t.Fatalf("moved-from tree is not empty")
	}
	if tree.String() != "" {
		t.Fatalf("moved-from tree dumps %q", tree.String())
	}
	if !slices.Equal(collect(moved), before) || moved.Capacity() != 2 {
		t.Fatalf("moved tree traversal = %v", collect(moved))
	}
	if err := moved.Check(); err != nil {
		t.Fatal(err)
	}
	// the moved-from tree stays usable
	tree.Insert(42)
	if moved.Contains(42) {
		t.Fatalf("moved-from tree still shares nodes")
	}
}

func TestMoveFrom(t *testing.T) {
	a := intTree(t, 2, 1, 2, 3)
	b := intTree(t, 40)
	b.MoveFrom(a)
	if !a.IsEmpty() || !slices.Equal(collect(b), []int{1, 2, 3}) || b.Capacity() != 2 {
		t.Fatalf("move assignment failed")
	}
	b.MoveFrom(b)
	if b.Len() != 3 {
		t.Fatalf("self move emptied tree")
	}
}

func FuzzInsertOrder(f *testing.F) {
	f.Add([]byte{3, 5, 1, 4, 6, 2}, uint8(2))
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8}, uint8(1))
	f.Fuzz(func(t *testing.T, data []byte, capacity uint8) {
		tree := NewOrdered[byte](int(capacity%8) + 1)
		seen := map[byte]bool{}
		for _, b := range data {
			if _, ok := tree.Insert(b); ok == seen[b] {
				t.Fatalf("insert(%d) inconsistent", b)
			}
			seen[b] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
		got := collect(tree)
		if !slices.IsSorted(got) || len(got) != len(seen) {
			t.Fatalf("traversal %v", got)
		}
	})
}
