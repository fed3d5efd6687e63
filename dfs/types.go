// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, and a caller-supplied visitation buffer.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an Option cannot be honored
	// for the given graph (e.g. a scratch buffer of the wrong length).
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(v, depth int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→nbr before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, nbr int) bool

	// Scratch, if non-nil, is used as the visitation record instead of a fresh
	// allocation. It must have length VertexCount(); DFS clears it first.
	Scratch []bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - A freshly allocated visitation record
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		Scratch:        nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(curr, nbr) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(curr, nbr int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithScratch returns an Option that reuses buf as the visitation record.
// Reusing one buffer across many sequential calls avoids an allocation per call;
// the buffer must not be shared by concurrent traversals.
func WithScratch(buf []bool) Option {
	return func(o *DFSOptions) {
		o.Scratch = buf
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were first visited (pre-order).
	Order []int

	// Depth maps each vertex index to its tree depth from the start,
	// or -1 if the vertex was not reached.
	Depth []int
}

// Reached reports whether v was visited.
func (r *DFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
