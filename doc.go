// Package lattis is a generic in-memory graph container: bring your own
// vertex ids and edge payloads, pick directed or undirected, and walk the
// result lazily.
//
// 🚀 What is lattis?
//
//	A small, generics-first library built around two packages:
//		• core: the adjacency store. Graph[V, E] over any ordered id type V
//		  and any payload type E. Undirected edges are stored once at their
//		  canonical slot and mirrored payload-free, so lookups never see a
//		  payload twice. Insertion is first-wins; self-loops are rejected.
//		• walk: the traversal engine. One frontier, two disciplines
//		  (BFSOrder/DFSOrder), advanced one vertex per Next call, with
//		  depth limits, parent tracking, an iter.Seq adapter, and
//		  parent-chain path reconstruction (FindPath, ShortestPath).
//
// ✨ Why choose lattis?
//
//   - Generic, not stringly-typed: ints, strings, or any ordered key work
//     as vertex ids without conversion layers
//   - Lazy walks: pay only for the vertices you consume, stop anywhere
//   - Deterministic by default: ordered enumeration makes traversals and
//     goldens reproducible; switch to hashed order when speed wins
//   - Fail-fast safety: mutating a graph under a live walk panics instead
//     of producing output that mixes two topologies
//   - Pure Go, tiny surface: no cgo, no runtime dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	core/ - Graph[V,E] storage, options, weights, cloning
//	walk/ - Walk cursors, FindPath, ShortestPath
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	g := core.NewGraph[int, core.Unit]()
//	g.AddEdgeList(
//	    core.Edge[int, core.Unit]{From: 1, To: 2},
//	    core.Edge[int, core.Unit]{From: 1, To: 3},
//	    core.Edge[int, core.Unit]{From: 2, To: 4},
//	    core.Edge[int, core.Unit]{From: 3, To: 4},
//	)
//	w, _ := walk.BFS(g, 1)
//	for v := range w.Seq() {
//	    fmt.Println(v) // 1, 2, 3, 4
//	}
//
// Dive into the package docs of core and walk for the full surface,
// complexity notes, and error contracts.
//
//	go get github.com/katalvlaran/lattis
package lattis
