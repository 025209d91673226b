// Package walk defines the traversal method selector, tunable options and
// error definitions for lazy walks over a core.Graph.
package walk

import "errors"

// Method selects the frontier discipline of a Walk.
type Method int

const (
	// BFSOrder pops the oldest frontier entry first (FIFO): vertices come
	// out in non-decreasing distance from the start.
	BFSOrder Method = iota

	// DFSOrder pops the newest frontier entry first (LIFO): the walk dives
	// along a branch before backtracking.
	DFSOrder
)

// String returns the conventional name of the method.
func (m Method) String() string {
	switch m {
	case BFSOrder:
		return "BFS"
	case DFSOrder:
		return "DFS"
	default:
		return "unknown"
	}
}

// Sentinel errors for walk construction and path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not
	// registered in the graph.
	ErrStartVertexNotFound = errors.New("walk: start vertex not found")

	// ErrUnknownMethod is returned when the Method value is neither
	// BFSOrder nor DFSOrder.
	ErrUnknownMethod = errors.New("walk: unknown traversal method")

	// ErrNoPath is returned by FindPath and ShortestPath when the target
	// is unreachable from the source.
	ErrNoPath = errors.New("walk: no path between vertices")
)

// Option configures a Walk via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a Walk.
type Options struct {
	// MaxDepth limits how deep discovery reaches, measured in edges from
	// the start. Vertices beyond the limit are never enqueued. A value of
	// 0 yields only the start vertex. Negative means no limit (default).
	MaxDepth int

	// Parents enables predecessor tracking: each vertex remembers the
	// vertex it was discovered from, with the start mapping to itself.
	// Required by Parent and by path reconstruction.
	Parents bool
}

// DefaultOptions returns the Options a plain Walk runs with:
//   - no depth limit (MaxDepth = -1)
//   - no parent tracking
func DefaultOptions() Options {
	return Options{
		MaxDepth: -1,
		Parents:  false,
	}
}

// WithMaxDepth returns an Option that limits discovery depth to limit.
// A limit of 0 yields only the start vertex; negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithParents returns an Option that enables predecessor tracking.
func WithParents() Option {
	return func(o *Options) {
		o.Parents = true
	}
}
