// Package walk implements lazy breadth-first and depth-first cursors over
// a core.Graph, with optional depth limiting and predecessor tracking.
package walk

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/lattis/core"
)

// Walk is a lazy traversal cursor over a graph.
//
// One engine serves both methods: a single frontier of pending vertex ids,
// popped FIFO for BFSOrder and LIFO for DFSOrder. Vertices are marked
// discovered at the moment they are placed on the frontier, never when
// popped, so every vertex reachable from the start is yielded exactly once
// regardless of how many edges point at it.
//
// A Walk is forward-only and not restartable: create a new one to traverse
// again. It never mutates the graph, and any number of walks may run over
// the same graph concurrently. Mutating the graph while a Walk is alive is
// a programming error: the next call to Next or HasNext panics.
type Walk[V cmp.Ordered, E any] struct {
	graph   *core.Graph[V, E]
	method  Method
	opts    Options
	version uint64

	frontier []V
	seen     map[V]bool // discovery markers (plain variant)
	parent   map[V]V    // discovery back-pointers (Parents variant)
	depth    map[V]int
}

// New creates a Walk over g starting at start, popping per method.
// Returns ErrGraphNil, ErrUnknownMethod, or ErrStartVertexNotFound when
// start is not registered. The frontier is seeded with start at depth 0.
// Complexity: O(1) beyond map pre-sizing; the traversal itself is O(V + E)
// spread across Next calls.
func New[V cmp.Ordered, E any](g *core.Graph[V, E], start V, method Method, opts ...Option) (*Walk[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if method != BFSOrder && method != DFSOrder {
		return nil, ErrUnknownMethod
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Prepare cursor state sized to the known vertex set
	n := g.VertexCount()
	w := &Walk[V, E]{
		graph:    g,
		method:   method,
		opts:     o,
		version:  g.Version(),
		frontier: make([]V, 0, n),
		depth:    make(map[V]int, n),
	}
	if o.Parents {
		w.parent = make(map[V]V, n)
	} else {
		w.seen = make(map[V]bool, n)
	}

	// Seed with the start vertex: discovered from itself at depth 0
	w.mark(start, start, 0)
	w.frontier = append(w.frontier, start)

	return w, nil
}

// BFS creates a breadth-first Walk: vertices come out in non-decreasing
// distance from start. Shorthand for New(g, start, BFSOrder, opts...).
func BFS[V cmp.Ordered, E any](g *core.Graph[V, E], start V, opts ...Option) (*Walk[V, E], error) {
	return New(g, start, BFSOrder, opts...)
}

// DFS creates a depth-first Walk: the cursor dives along a branch before
// backtracking. Shorthand for New(g, start, DFSOrder, opts...).
func DFS[V cmp.Ordered, E any](g *core.Graph[V, E], start V, opts ...Option) (*Walk[V, E], error) {
	return New(g, start, DFSOrder, opts...)
}

// Next advances the cursor: pops the next vertex per the walk's method,
// places its undiscovered neighbors on the frontier, and yields it.
// Returns (zero, false) once the frontier is exhausted, and keeps
// returning it on further calls.
//
// Panics if the graph was mutated after the Walk was created.
// Complexity: O(d log d) per call under OrderedScan, O(d) hashed,
// d = |adjacency of the popped vertex|.
func (w *Walk[V, E]) Next() (V, bool) {
	w.checkVersion()
	if len(w.frontier) == 0 {
		var zero V
		return zero, false
	}
	v := w.pop()
	w.discover(v)

	return v, true
}

// HasNext reports whether the cursor has vertices left to yield.
// Panics if the graph was mutated after the Walk was created.
// Complexity: O(1).
func (w *Walk[V, E]) HasNext() bool {
	w.checkVersion()

	return len(w.frontier) > 0
}

// Seq adapts the cursor to a range-over-func iterator:
//
//	for v := range w.Seq() { ... }
//
// The sequence yields exactly what repeated Next calls would. Breaking out
// of the range leaves the cursor positioned at the next unyielded vertex,
// so iteration can resume with Next or another Seq.
func (w *Walk[V, E]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := w.Next(); ok; v, ok = w.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Depth reports the discovery depth of v in edges from the start, for
// vertices the walk has discovered so far.
// Complexity: O(1).
func (w *Walk[V, E]) Depth(v V) (int, bool) {
	d, ok := w.depth[v]

	return d, ok
}

// Parent reports the vertex v was discovered from; the start maps to
// itself. Always (zero, false) unless the Walk was built WithParents.
// Complexity: O(1).
func (w *Walk[V, E]) Parent(v V) (V, bool) {
	if !w.opts.Parents {
		var zero V
		return zero, false
	}
	p, ok := w.parent[v]

	return p, ok
}

// Method reports the frontier discipline of this walk.
func (w *Walk[V, E]) Method() Method { return w.method }

// checkVersion panics if the graph has been mutated since the Walk was
// created; the cursor's marks no longer describe the topology.
func (w *Walk[V, E]) checkVersion() {
	if w.graph.Version() != w.version {
		panic("walk: graph mutated during traversal")
	}
}

// pop removes and returns the next frontier entry: front for BFSOrder,
// back for DFSOrder.
func (w *Walk[V, E]) pop() V {
	var v V
	if w.method == DFSOrder {
		last := len(w.frontier) - 1
		v = w.frontier[last]
		w.frontier = w.frontier[:last]
	} else {
		v = w.frontier[0]
		w.frontier = w.frontier[1:]
	}

	return v
}

// discover scans the neighbors of from and enqueues each vertex not yet
// marked, marking it at enqueue time.
func (w *Walk[V, E]) discover(from V) {
	next := w.depth[from] + 1
	if w.opts.MaxDepth >= 0 && next > w.opts.MaxDepth {
		return
	}
	neighbors, err := w.graph.Neighbors(from)
	if err != nil {
		return // frontier entries are always registered vertices
	}
	var nbr V
	for _, nbr = range neighbors {
		if w.discovered(nbr) {
			continue
		}
		w.mark(nbr, from, next)
		w.frontier = append(w.frontier, nbr)
	}
}

// discovered reports whether v has already been placed on the frontier.
func (w *Walk[V, E]) discovered(v V) bool {
	if w.opts.Parents {
		_, ok := w.parent[v]
		return ok
	}

	return w.seen[v]
}

// mark records v as discovered at depth d, reached from parent. Marking
// happens at enqueue, never at pop; that is what keeps any vertex from
// entering the frontier twice.
func (w *Walk[V, E]) mark(v, parent V, d int) {
	if w.opts.Parents {
		w.parent[v] = parent
	} else {
		w.seen[v] = true
	}
	w.depth[v] = d
}
