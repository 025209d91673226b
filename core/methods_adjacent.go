// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() and AdjacencyList() values sort ascending under OrderedScan.

package core

import "slices"

// Neighbors returns the ids adjacent to v: for undirected graphs every
// vertex sharing an edge with v (mirror cells exist exactly for this), for
// directed graphs the out-neighbors of v.
//
// Returns ErrVertexNotFound if v is not registered. An isolated vertex
// yields an empty, non-nil slice.
// Complexity: O(d log d) ordered, O(d) hashed, d = |adjacency of v|.
func (g *Graph[V, E]) Neighbors(v V) ([]V, error) {
	table, ok := g.tables[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, 0, len(table))
	var u V
	for u = range table {
		out = append(out, u)
	}
	if g.ordering == OrderedScan {
		slices.Sort(out)
	}

	return out, nil
}

// AdjacencyList returns a full snapshot of the adjacency structure:
// vertex id to its neighbor ids, mirrors included. The snapshot is
// independent of the graph; mutating it changes nothing.
// Complexity: O(V + E) hashed, plus per-vertex sorting under OrderedScan.
func (g *Graph[V, E]) AdjacencyList() map[V][]V {
	out := make(map[V][]V, len(g.tables))
	var (
		v     V
		table map[V]*E
	)
	for v, table = range g.tables {
		ids := make([]V, 0, len(table))
		var u V
		for u = range table {
			ids = append(ids, u)
		}
		if g.ordering == OrderedScan {
			slices.Sort(ids)
		}
		out[v] = ids
	}

	return out
}
