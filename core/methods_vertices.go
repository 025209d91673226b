// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns ids sorted ascending under OrderedScan.

package core

import "slices"

// AddVertex registers v with an empty adjacency table if it is not present
// (idempotent). Re-adding an existing vertex never disturbs its edges.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) {
	if _, exists := g.tables[v]; exists {
		return // no-op for existing vertex
	}
	g.tables[v] = make(map[V]*E)
	g.version++
}

// HasVertex reports whether v is registered.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.tables[v]

	return ok
}

// Vertices returns all registered vertex ids: ascending under OrderedScan,
// raw map order under HashedScan.
// Complexity: O(V log V) ordered, O(V) hashed.
func (g *Graph[V, E]) Vertices() []V {
	ids := make([]V, 0, len(g.tables))
	var id V
	for id = range g.tables {
		ids = append(ids, id)
	}
	if g.ordering == OrderedScan {
		slices.Sort(ids)
	}

	return ids
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	return len(g.tables)
}

// Degree returns the adjacency table size of v: the classic degree in
// undirected graphs (mirror slots make both endpoints count each other),
// the out-degree in directed graphs.
// Returns ErrVertexNotFound if v is not registered.
// Complexity: O(1).
func (g *Graph[V, E]) Degree(v V) (int, error) {
	table, ok := g.tables[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(table), nil
}
