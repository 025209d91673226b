// Package core provides a generic in-memory Graph: an adjacency store over
// caller-chosen vertex ids and edge payloads, directed or undirected, with
// a minimal, composable API surface.
//
// The Graph G = (V,E) is parameterized twice:
//
//   - V, the vertex id: any ordered, copyable key type (cmp.Ordered).
//     The graph never invents ids; callers bring their own.
//   - E, the edge payload: any type. Use Unit when edges carry nothing.
//
// Storage model:
//
//   - One adjacency table per vertex: tables[u][v] points at the payload
//     of edge (u,v).
//   - Undirected edges are stored once, at the canonical (min,max) slot.
//     The reverse slot holds a nil mirror cell, so Neighbors works from
//     either endpoint while FindEdge never reports a payload twice.
//   - Directed edges store exactly the given orientation; the reverse
//     lookup misses.
//   - Insertion is first-wins: re-adding an existing edge returns the
//     stored payload untouched. There are no multi-edges and no
//     self-loops (ErrInvalidEdge).
//
// Why use core.Graph?
//
//   - Single type, two flags: directedness and enumeration order are
//     construction options, not separate graph types.
//   - Deterministic iteration: under OrderedScan (default), Vertices(),
//     Neighbors(), Edges() and AdjacencyList() return sorted results, so
//     everything built on top reproduces exactly.
//   - O(1) membership and counts: HasVertex, HasEdge, FindEdge,
//     VertexCount, EdgeCount, Degree.
//   - Clone support: CloneEmpty (vertices+flags), Clone (deep copy).
//   - Weight capability without a weighted core: payloads implementing
//     Weighted report their own cost; everything else weighs DefaultWeight.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation model of the graph.
//	    • Directed graphs store only the "from→to" slot.
//	    • Undirected graphs canonicalize to (min,max) and mirror the
//	      reverse slot with a payload-free cell.
//
//	– WithOrdering(ord Ordering)
//	    Selects the enumeration scan strategy.
//	    • OrderedScan (default): sorted ascending, reproducible.
//	    • HashedScan: raw map order, fastest, randomized per run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                      // O(1), idempotent
//	HasVertex(v V) bool                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v V, payload E) (*E, error)  // O(1), first-wins
//	AddEdgeList(edges ...Edge[V,E]) error   // sequential AddEdge
//
//	// Query
//	FindEdge(u, v V) (*E, bool)         // O(1), canonicalizing
//	HasEdge(u, v V) bool                // O(1)
//	EdgeWeight(u, v V) (int64, bool)    // O(1)
//	Neighbors(v V) ([]V, error)         // O(d log d)
//	AdjacencyList() map[V][]V           // O(V+E)
//	Vertices() []V                      // O(V log V)
//	Edges() []Edge[V,E]                 // O(E log E)
//
//	// Counts & degrees
//	Degree(v V) (int, error)            // O(1)
//	VertexCount() int                   // O(1)
//	EdgeCount() int                     // O(1)
//
//	// Cloning
//	CloneEmpty() *Graph[V,E]            // O(V): vertices+flags only
//	Clone() *Graph[V,E]                 // O(V+E): deep copy
//
//	// Introspection
//	Directed() bool / Ordering() Ordering / Version() uint64
//
// Concurrency model:
//
// The graph is a single-writer structure. Concurrent readers, including
// live walk cursors, are always safe; there are no internal locks to
// contend on. Mutating while a walk is alive is a programming error: the
// Version counter moves and the walk panics on its next step rather than
// yielding corrupt output.
//
// Errors:
//
//	ErrInvalidEdge    – self-loop attempted; nothing was mutated
//	ErrVertexNotFound – query referenced an unregistered vertex
package core
