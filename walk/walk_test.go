package walk_test

import (
	"cmp"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/lattis/core"
	"github.com/katalvlaran/lattis/walk"
)

// drain pulls every remaining vertex out of the cursor.
func drain[V cmp.Ordered, E any](w *walk.Walk[V, E]) []V {
	var order []V
	for {
		v, ok := w.Next()
		if !ok {
			break
		}
		order = append(order, v)
	}

	return order
}

// square returns the undirected 4-cycle A-B-C-D-A.
func square() *core.Graph[string, core.Unit] {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("B", "C", core.Unit{})
	_, _ = g.AddEdge("C", "D", core.Unit{})
	_, _ = g.AddEdge("D", "A", core.Unit{})

	return g
}

// TestNew_Errors verifies that invalid inputs are rejected with sentinels.
func TestNew_Errors(t *testing.T) {
	// nil graph
	if _, err := walk.BFS[string, core.Unit](nil, "A"); !errors.Is(err, walk.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph[string, core.Unit]()
	if _, err := walk.BFS(g, "missing"); !errors.Is(err, walk.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// unknown traversal method
	g.AddVertex("A")
	if _, err := walk.New(g, "A", walk.Method(99)); !errors.Is(err, walk.ErrUnknownMethod) {
		t.Errorf("bad method: want ErrUnknownMethod, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	g.AddVertex("A")

	w, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := w.Next()
	if !ok || v != "A" {
		t.Errorf("Next = (%q, %v); want (A, true)", v, ok)
	}
	if w.HasNext() {
		t.Error("HasNext after exhaustion = true; want false")
	}
	if v, ok = w.Next(); ok || v != "" {
		t.Errorf("Next after exhaustion = (%q, %v); want zero value, false", v, ok)
	}
	if d, ok := w.Depth("A"); !ok || d != 0 {
		t.Errorf("Depth[A] = (%d, %v); want (0, true)", d, ok)
	}
}

// TestBFS_LayerDiscipline pins the FIFO order on the square: both depth-1
// vertices come out before the depth-2 one, ascending inside a layer.
func TestBFS_LayerDiscipline(t *testing.T) {
	w, err := walk.BFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := drain(w), []string{"A", "B", "D", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if d, ok := w.Depth(v); !ok || d != want {
			t.Errorf("Depth[%s] = (%d, %v); want (%d, true)", v, d, ok, want)
		}
	}
}

// TestDFS_Discipline pins the LIFO order on the square: the most recently
// discovered branch is explored first.
func TestDFS_Discipline(t *testing.T) {
	w, err := walk.DFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := drain(w), []string{"A", "D", "C", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	// B was discovered while expanding A, so its recorded depth stays 1
	// even though it surfaced last.
	if d, _ := w.Depth("B"); d != 1 {
		t.Errorf("Depth[B] = %d; want 1", d)
	}
}

// TestWalk_SharedNeighborOnce ensures a vertex reachable over two branches
// of a diamond is yielded exactly once.
func TestWalk_SharedNeighborOnce(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("A", "C", core.Unit{})
	_, _ = g.AddEdge("B", "D", core.Unit{})
	_, _ = g.AddEdge("C", "D", core.Unit{})

	for _, m := range []walk.Method{walk.BFSOrder, walk.DFSOrder} {
		w, err := walk.New(g, "A", m)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[string]int)
		for _, v := range drain(w) {
			seen[v]++
		}
		if len(seen) != 4 {
			t.Errorf("%s visited %d vertices; want 4", m, len(seen))
		}
		for v, n := range seen {
			if n != 1 {
				t.Errorf("%s yielded %s %d times; want once", m, v, n)
			}
		}
	}
}

// TestBFS_ChordSquare covers the cycle-with-chord shape: edges (0,1),
// (1,2), (2,3), (3,1). Every vertex is reached, the start comes first.
func TestBFS_ChordSquare(t *testing.T) {
	w, err := walk.BFS(chordSquare(false), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := drain(w), []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
}

// TestHasNext_NonConsuming checks that peeking never advances the cursor.
func TestHasNext_NonConsuming(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})

	w, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !w.HasNext() || !w.HasNext() {
		t.Fatal("HasNext on fresh cursor = false; want true")
	}
	if v, _ := w.Next(); v != "A" {
		t.Errorf("first Next = %q; want A", v)
	}
}

// TestDepth_Lazy confirms depths materialize on discovery, not up front.
func TestDepth_Lazy(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("B", "C", core.Unit{})

	w, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Depth("B"); ok {
		t.Error("Depth[B] known before expanding A")
	}
	_, _ = w.Next() // yields A, discovers B
	if d, ok := w.Depth("B"); !ok || d != 1 {
		t.Errorf("Depth[B] = (%d, %v); want (1, true)", d, ok)
	}
	if _, ok := w.Depth("C"); ok {
		t.Error("Depth[C] known before expanding B")
	}
}

// TestParent verifies the parent chain under WithParents and its absence
// otherwise.
func TestParent(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("B", "C", core.Unit{})

	w, err := walk.BFS(g, "A", walk.WithParents())
	if err != nil {
		t.Fatal(err)
	}
	drain(w)

	// the start vertex is its own parent
	if p, ok := w.Parent("A"); !ok || p != "A" {
		t.Errorf("Parent[A] = (%q, %v); want (A, true)", p, ok)
	}
	if p, ok := w.Parent("C"); !ok || p != "B" {
		t.Errorf("Parent[C] = (%q, %v); want (B, true)", p, ok)
	}

	bare, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	drain(bare)
	if _, ok := bare.Parent("C"); ok {
		t.Error("Parent available without WithParents")
	}
}

// TestWithMaxDepth verifies the depth cutoff: 0 yields the start alone,
// negative lifts the limit.
func TestWithMaxDepth(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("B", "C", core.Unit{})

	cases := []struct {
		limit int
		want  []string
	}{
		{limit: 0, want: []string{"A"}},
		{limit: 1, want: []string{"A", "B"}},
		{limit: 2, want: []string{"A", "B", "C"}},
		{limit: -1, want: []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		w, err := walk.BFS(g, "A", walk.WithMaxDepth(tc.limit))
		if err != nil {
			t.Fatal(err)
		}
		if got := drain(w); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.limit, got, tc.want)
		}
	}
}

// TestDirected_FollowsOrientation ensures only out-edges are expanded.
func TestDirected_FollowsOrientation(t *testing.T) {
	g := core.NewGraph[string, core.Unit](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.Unit{})
	_, _ = g.AddEdge("B", "C", core.Unit{})

	w, err := walk.BFS(g, "B")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := drain(w), []string{"B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("from B: got %v; want %v", got, want)
	}
}

// TestDisconnected ensures the walk stays inside the start component.
func TestDisconnected(t *testing.T) {
	g := core.NewGraph[string, core.Unit]()
	_, _ = g.AddEdge("X", "Y", core.Unit{})
	_, _ = g.AddEdge("P", "Q", core.Unit{})

	w, err := walk.DFS(g, "X")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := drain(w), []string{"X", "Y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("from X: got %v; want %v", got, want)
	}
}

// TestMutationDuringWalkPanics pins the fail-fast contract: an effective
// mutation between pulls invalidates the cursor.
func TestMutationDuringWalkPanics(t *testing.T) {
	g := square()
	w, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Next()
	_, _ = g.AddEdge("D", "E", core.Unit{})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Next after mutation: expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "mutated") {
			t.Fatalf("panic = %v; want mutation message", r)
		}
	}()
	w.Next()
}

// TestNoOpMutationKeepsWalkAlive: rejected and duplicate inserts leave the
// version untouched, so the cursor keeps going.
func TestNoOpMutationKeepsWalkAlive(t *testing.T) {
	g := square()
	w, err := walk.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Next()

	_, _ = g.AddEdge("B", "A", core.Unit{}) // duplicate of existing (A,B)
	_, _ = g.AddEdge("C", "C", core.Unit{}) // rejected self-loop
	g.AddVertex("A")                        // already present

	rest := drain(w)
	if want := []string{"B", "D", "C"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("rest = %v; want %v", rest, want)
	}
}

// TestSeq_BreakAndResume checks that ranging shares the forward-only
// cursor: breaking out does not rewind it.
func TestSeq_BreakAndResume(t *testing.T) {
	w, err := walk.BFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}

	var head []string
	for v := range w.Seq() {
		head = append(head, v)
		if len(head) == 2 {
			break
		}
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(head, want) {
		t.Errorf("head = %v; want %v", head, want)
	}
	if got, want := drain(w), []string{"D", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("rest = %v; want %v", got, want)
	}
}

// TestHashedScan_SameVisitedSet: the scan strategy reorders siblings but
// never changes the reachable set.
func TestHashedScan_SameVisitedSet(t *testing.T) {
	g := core.NewGraph[int, core.Unit](core.WithOrdering(core.HashedScan))
	for i := 1; i <= 32; i++ {
		_, _ = g.AddEdge(0, i, core.Unit{})
	}

	w, err := walk.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(w)
	if len(got) != 33 {
		t.Fatalf("visited %d vertices; want 33", len(got))
	}
	seen := make(map[int]bool, len(got))
	for _, v := range got {
		seen[v] = true
	}
	for i := 0; i <= 32; i++ {
		if !seen[i] {
			t.Errorf("vertex %d never yielded", i)
		}
	}
}

// TestMethod_String covers the method accessor and its labels.
func TestMethod_String(t *testing.T) {
	w, err := walk.DFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if w.Method() != walk.DFSOrder {
		t.Errorf("Method = %v; want DFSOrder", w.Method())
	}
	if got := walk.BFSOrder.String(); got != "BFS" {
		t.Errorf("BFSOrder.String() = %q; want BFS", got)
	}
	if got := walk.Method(99).String(); got != "unknown" {
		t.Errorf("Method(99).String() = %q; want unknown", got)
	}
}
