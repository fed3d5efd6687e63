// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// Scratch, if non-nil, is used as the visitation record instead of a
	// fresh allocation. It must have length VertexCount(); BFS clears it first.
	Scratch []bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - freshly allocated visitation record
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		Scratch:        nil,
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithScratch reuses buf as the visitation record. The buffer must not be
// shared by concurrent traversals.
func WithScratch(buf []bool) Option {
	return func(o *BFSOptions) {
		o.Scratch = buf
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start per vertex, -1 if unreached.
type BFSResult struct {
	Order []int
	Depth []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// Layers groups Order by depth: Layers()[d] lists the vertices at distance d
// in visit order.
func (r *BFSResult) Layers() [][]int {
	var layers [][]int
	for _, v := range r.Order {
		d := r.Depth[v]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], v)
	}

	return layers
}
