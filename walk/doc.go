// Package walk provides lazy breadth-first and depth-first traversal
// cursors over a core.Graph, plus parent-chain path reconstruction.
//
// What
//
//   - One traversal engine, two disciplines: a Walk holds a single
//     frontier of pending vertices; BFSOrder pops the oldest entry (FIFO),
//     DFSOrder pops the newest (LIFO). Everything else is shared.
//   - Lazy by construction: nothing is explored until Next is called, and
//     a consumer that stops early pays only for what it consumed.
//   - Discovery-time marking: a vertex is marked the moment it is placed
//     on the frontier. Every vertex reachable from the start is yielded
//     exactly once, however many edges point at it.
//   - Optional ancestry: WithParents records, for each discovered vertex,
//     the vertex it was discovered from (the start maps to itself), which
//     Parent exposes and FindPath/ShortestPath replay.
//   - Depth tracking: Depth reports each discovered vertex's distance in
//     edges from the start; WithMaxDepth prunes discovery beyond a bound.
//   - iter.Seq adapter: Seq() lets a Walk drive a range-over-func loop and
//     plug into the slices/maps iterator helpers.
//
// Why
//
//   - Reachability, component discovery and level layering in O(V + E).
//   - Unweighted path queries without materializing a full visit order.
//   - A cursor composes: take three vertices from a BFS, hand the rest to
//     another consumer, abandon it mid-way at no cost.
//
// Determinism
//
// Over a graph built with core.OrderedScan (the default), neighbors are
// scanned in ascending order, so the yield sequence is fully reproducible.
// Under core.HashedScan the visited set and depths are identical but the
// order within a depth layer (BFS) or branch choice (DFS) follows map
// order.
//
// Consistency
//
// A Walk never mutates its graph, and concurrent walks over one graph are
// safe. Mutating the graph while a Walk is alive is a programming error:
// the next Next or HasNext call panics rather than yielding output that
// mixes two topologies. Abandoning a cursor needs no cleanup.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for a full drain, spread across Next calls
//   - Memory: O(V) for frontier, marks, depths (and parents if enabled)
//
// Usage
//
//	g := core.NewGraph[string, core.Unit]()
//	g.AddEdge("a", "b", core.Unit{})
//	g.AddEdge("b", "c", core.Unit{})
//
//	w, err := walk.BFS(g, "a")
//	if err != nil {
//		// ErrGraphNil or ErrStartVertexNotFound
//	}
//	for v := range w.Seq() {
//		fmt.Println(v) // a, b, c
//	}
//
//	// Depth-first with ancestry and a depth bound:
//	w, err = walk.DFS(g, "a", walk.WithParents(), walk.WithMaxDepth(2))
//
//	// Unweighted paths:
//	hops, err := walk.FindPath(g, "a", "c")     // [c b], target→source
//	route, err := walk.ShortestPath(g, "a", "c") // [a b c], fewest hops
//
// Options
//
//   - DefaultOptions(): no depth limit, no parent tracking.
//   - WithMaxDepth(d):  prune discovery beyond depth d (0 = start only,
//     negative = unlimited).
//   - WithParents():    record discovery back-pointers for Parent and the
//     path helpers.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not registered.
//   - ErrUnknownMethod        if the Method value is out of range.
//   - ErrNoPath               if FindPath/ShortestPath exhaust unreached.
package walk
