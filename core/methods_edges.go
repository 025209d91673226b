// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeList/FindEdge/HasEdge/
//       Edges/EdgeCount/EdgeWeight.
// Determinism:
//   - Edges() returns records sorted by (From, To) asc under OrderedScan.
// Invariants:
//   - Undirected payloads live at the canonical (min, max) slot only; the
//     reverse slot is a nil mirror cell and never reports a payload.
//   - A failed AddEdge mutates nothing, not even vertex registration.

package core

import (
	"cmp"
	"slices"
)

// AddEdge inserts the edge (u, v) carrying payload and returns a pointer to
// the payload actually stored.
//
// Insertion is first-wins: if the edge already exists, the new payload is
// discarded and the existing cell is returned, so re-adding never
// overwrites. Missing endpoints are registered automatically.
//
// Undirected graphs canonicalize (u, v) to (min, max) before storing, and
// keep a payload-free mirror at the reverse slot so either endpoint reaches
// the edge. Directed graphs store exactly the (u, v) orientation.
//
// Steps:
//  1. Reject self-loops (ErrInvalidEdge) before touching any state.
//  2. Canonicalize the endpoint pair when undirected.
//  3. Ensure both endpoint tables exist.
//  4. Ensure the mirror cell (undirected only), first-wins.
//  5. Ensure the payload cell, first-wins; return the stored cell.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(u, v V, payload E) (*E, error) {
	// 1) Self-loops are not representable; fail before any mutation.
	if u == v {
		return nil, ErrInvalidEdge
	}

	// 2) Canonical orientation: undirected payloads live at (min, max).
	if !g.directed && v < u {
		u, v = v, u
	}

	// 3) Both endpoints exist after a successful insert.
	g.AddVertex(u)
	g.AddVertex(v)

	// 4) Mirror cell at the reverse slot (undirected only), never
	//    overwriting: a payload can sit there only in directed mode,
	//    which takes the other branch.
	if !g.directed {
		if _, ok := g.tables[v][u]; !ok {
			g.tables[v][u] = nil
			g.version++
		}
	}

	// 5) Payload cell, first-wins.
	if cell, ok := g.tables[u][v]; ok && cell != nil {
		return cell, nil
	}
	cell := &payload
	g.tables[u][v] = cell
	g.edges++
	g.version++

	return cell, nil
}

// AddEdgeList applies AddEdge to each record in order. Duplicates of an
// already-stored edge are no-ops. The first invalid record stops the list;
// edges inserted before it remain (atomicity is per edge, not per list).
// Complexity: O(len(edges)) amortized.
func (g *Graph[V, E]) AddEdgeList(edges ...Edge[V, E]) error {
	var e Edge[V, E]
	for _, e = range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Payload); err != nil {
			return err
		}
	}

	return nil
}

// FindEdge reports the payload stored for (u, v), if any.
//
// Undirected lookups canonicalize the pair first, so both orientations find
// the edge. Directed lookups are strict: only the stored orientation
// matches. Mirror cells and unknown vertices report not-found. FindEdge
// never registers vertices.
//
// The returned pointer aliases graph storage; mutating the payload through
// it is visible to every other reader but never changes topology.
// Complexity: O(1).
func (g *Graph[V, E]) FindEdge(u, v V) (*E, bool) {
	if !g.directed && v < u {
		u, v = v, u
	}
	table, ok := g.tables[u]
	if !ok {
		return nil, false
	}
	cell, ok := table[v]
	if !ok || cell == nil {
		return nil, false
	}

	return cell, true
}

// HasEdge reports whether the edge (u, v) exists. Equivalent to FindEdge
// with the payload dropped: canonicalizing, mirror-blind, strict when
// directed.
// Complexity: O(1).
func (g *Graph[V, E]) HasEdge(u, v V) bool {
	_, ok := g.FindEdge(u, v)

	return ok
}

// EdgeWeight reports the weight of the edge (u, v): the payload's Weight if
// it implements Weighted, DefaultWeight otherwise. The boolean follows
// FindEdge semantics.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeWeight(u, v V) (int64, bool) {
	cell, ok := g.FindEdge(u, v)
	if !ok {
		return 0, false
	}

	return WeightOf(*cell), true
}

// Edges returns every stored edge exactly once as (From, To, Payload)
// records. Undirected records are canonical (From < To); mirror cells are
// skipped. Sorted by (From, To) under OrderedScan.
// Complexity: O(E log E) ordered, O(V + E) hashed.
func (g *Graph[V, E]) Edges() []Edge[V, E] {
	out := make([]Edge[V, E], 0, g.edges)
	var (
		u, v  V
		table map[V]*E
		cell  *E
	)
	for u, table = range g.tables {
		for v, cell = range table {
			if cell == nil {
				continue
			}
			out = append(out, Edge[V, E]{From: u, To: v, Payload: *cell})
		}
	}
	if g.ordering == OrderedScan {
		slices.SortFunc(out, func(a, b Edge[V, E]) int {
			if c := cmp.Compare(a.From, b.From); c != 0 {
				return c
			}
			return cmp.Compare(a.To, b.To)
		})
	}

	return out
}

// EdgeCount returns the number of stored edges. Mirror cells do not count.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int {
	return g.edges
}
