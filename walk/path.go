// File: path.go
// Role: parent-chain path reconstruction over Walk cursors: FindPath
//       (depth-first, reversed hop list) and ShortestPath (breadth-first,
//       fewest hops, forward order).

package walk

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lattis/core"
)

// FindPath locates a route from source to target by depth-first discovery
// and returns the hops in target-to-source order, excluding source itself:
// path[0] is target, path[len-1] is the vertex reached directly from
// source. When source == target the path is empty and err is nil.
//
// The route follows edge direction in directed graphs and is a valid path,
// not necessarily a shortest one; use ShortestPath for fewest hops.
//
// Returns ErrGraphNil or ErrStartVertexNotFound from cursor construction,
// and ErrNoPath when the walk exhausts without reaching target.
// Complexity: O(V + E).
func FindPath[V cmp.Ordered, E any](g *core.Graph[V, E], source, target V) ([]V, error) {
	w, err := DFS(g, source, WithParents())
	if err != nil {
		return nil, err
	}
	if !advanceTo(w, target) {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, source, target)
	}

	// Replay the discovery chain from target; the start's self-link ends it.
	path := make([]V, 0, len(w.parent))
	for cur := target; w.parent[cur] != cur; cur = w.parent[cur] {
		path = append(path, cur)
	}

	return path, nil
}

// ShortestPath locates a fewest-hop route from source to target by
// breadth-first discovery and returns it in source-to-target order,
// both endpoints included. When source == target the path is [source].
//
// Returns ErrGraphNil or ErrStartVertexNotFound from cursor construction,
// and ErrNoPath when the walk exhausts without reaching target.
// Complexity: O(V + E).
func ShortestPath[V cmp.Ordered, E any](g *core.Graph[V, E], source, target V) ([]V, error) {
	w, err := BFS(g, source, WithParents())
	if err != nil {
		return nil, err
	}
	if !advanceTo(w, target) {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, source, target)
	}

	// Collect target back to source inclusive, then flip to forward order.
	path := make([]V, 0, len(w.parent))
	for cur := target; ; cur = w.parent[cur] {
		path = append(path, cur)
		if w.parent[cur] == cur {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}

// advanceTo drains w until it yields target; reports whether it did.
// Once target has been popped its discovery chain is complete, so the
// caller may stop consuming the cursor.
func advanceTo[V cmp.Ordered, E any](w *Walk[V, E], target V) bool {
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		if v == target {
			return true
		}
	}

	return false
}
