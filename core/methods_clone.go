// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones start with a fresh Version; snapshots taken against the source
//     do not carry over.

package core

// CloneEmpty returns a new Graph with the same directedness, ordering, and
// vertices, but no edges.
// Complexity: O(V).
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	clone := NewGraph[V, E](WithDirected(g.directed), WithOrdering(g.ordering))
	var v V
	for v = range g.tables {
		clone.tables[v] = make(map[V]*E)
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices, edges, mirrors.
// Payload values are copied into fresh cells, so FindEdge pointers into the
// clone never alias the source. Pointers inside a payload value still refer
// to the same targets.
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := g.CloneEmpty()
	var (
		u, v  V
		table map[V]*E
		cell  *E
	)
	for u, table = range g.tables {
		dst := clone.tables[u]
		for v, cell = range table {
			if cell == nil {
				dst[v] = nil
				continue
			}
			payload := *cell
			dst[v] = &payload
		}
	}
	clone.edges = g.edges

	return clone
}
