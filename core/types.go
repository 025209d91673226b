// File: types.go
// Role: Graph type, construction options, sentinel errors, and the
//       Weighted payload capability.
// Determinism:
//   - OrderedScan (default) makes every enumeration surface sorted ascending.
// Concurrency:
//   - Single-writer model: mutations go through the owning goroutine only.
//     Any number of concurrent readers (including live walks) are safe; a
//     mutation invalidates outstanding walks via the Version counter.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates an edge whose endpoints coincide; self-loops
	// are not representable and the failed call leaves the graph untouched.
	ErrInvalidEdge = errors.New("core: invalid edge: endpoints must differ")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Ordering selects the scan strategy for enumeration surfaces
// (Vertices, Neighbors, Edges, AdjacencyList).
//
// The strategy is fixed at construction and never changes results as a set,
// only their order. Choose OrderedScan for reproducible traversals, goldens
// and examples; choose HashedScan to skip sorting on hot paths where order
// does not matter.
type Ordering int

const (
	// OrderedScan returns enumeration results in ascending vertex order.
	// This is the default.
	OrderedScan Ordering = iota

	// HashedScan returns enumeration results in raw map order, which Go
	// randomizes per run. Fastest; not reproducible.
	HashedScan
)

// DefaultWeight is the weight reported for payloads that do not implement
// Weighted. Every edge counts as one hop unless its payload says otherwise.
const DefaultWeight int64 = 1

// Weighted is the optional capability interface for edge payloads that
// carry an explicit weight. Payload types are free to ignore it; WeightOf
// falls back to DefaultWeight.
type Weighted interface {
	// Weight reports the cost of traversing the edge.
	Weight() int64
}

// Unit is the empty edge payload for graphs where edges carry no data.
type Unit struct{}

// WeightOf reports the weight of an edge payload: the payload's own Weight
// if it implements Weighted, DefaultWeight otherwise.
// Complexity: O(1).
func WeightOf[E any](payload E) int64 {
	if w, ok := any(payload).(Weighted); ok {
		return w.Weight()
	}

	return DefaultWeight
}

// Edge is the (From, To, Payload) record used for bulk insertion
// (AddEdgeList) and enumeration (Edges). For undirected graphs the
// enumeration form is canonical: From < To.
type Edge[V cmp.Ordered, E any] struct {
	// From is the source endpoint (the smaller endpoint when undirected).
	From V

	// To is the destination endpoint.
	To V

	// Payload is the data stored on the edge.
	Payload E
}

// graphOptions collects construction-time knobs before the Graph exists.
// Options stay non-generic so call sites never spell type arguments.
type graphOptions struct {
	directed bool
	ordering Ordering
}

// GraphOption configures a Graph at construction.
type GraphOption func(*graphOptions)

// WithDirected sets the orientation model for all edges
// (true = directed, false = undirected). Undirected is the default.
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// WithOrdering selects the enumeration scan strategy.
// OrderedScan is the default.
func WithOrdering(ord Ordering) GraphOption {
	return func(o *graphOptions) { o.ordering = ord }
}

// Graph is a generic in-memory adjacency store.
//
// V identifies vertices: any ordered, copyable key type. E is the edge
// payload: any type, with Unit for "nothing". Directedness and scan
// strategy are fixed at construction.
//
// Storage is a map of per-vertex adjacency tables. Each table cell holds a
// pointer to the edge payload; in undirected graphs the payload lives only
// at the canonical (min, max) slot, and the reverse (max, min) slot holds a
// nil cell so both endpoints enumerate each other as neighbors. Directed
// graphs store the (from, to) slot only.
type Graph[V cmp.Ordered, E any] struct {
	directed bool
	ordering Ordering

	// tables[u][v] is the payload cell of edge (u, v); a nil cell is the
	// mirror half of an undirected edge whose payload lives at (v, u).
	tables map[V]map[V]*E

	// edges counts payload-bearing cells (mirrors excluded).
	edges int

	// version increments on every effective mutation; walks snapshot it
	// and fail fast when it moves under them.
	version uint64
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and enumerates in ascending order.
// Complexity: O(1).
func NewGraph[V cmp.Ordered, E any](opts ...GraphOption) *Graph[V, E] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V, E]{
		directed: o.directed,
		ordering: o.ordering,
		tables:   make(map[V]map[V]*E),
	}
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph[V, E]) Directed() bool { return g.directed }

// Ordering reports the enumeration scan strategy fixed at construction.
// Complexity: O(1).
func (g *Graph[V, E]) Ordering() Ordering { return g.ordering }

// Version returns the mutation counter. It increments exactly when a call
// changes the graph (new vertex, new edge slot); no-op calls leave it
// untouched. Iteration layers snapshot it to detect mutation mid-walk.
// Complexity: O(1).
func (g *Graph[V, E]) Version() uint64 { return g.version }
