// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or a wrapped core.ErrOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error
// (with the partial result).
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.VertexCount()
	if !g.Contains(start) {
		return nil, fmt.Errorf("bfs: start vertex %d not in [0, %d): %w", start, n, core.ErrOutOfRange)
	}

	visited, err := visitationRecord(o.Scratch, n)
	if err != nil {
		return nil, err
	}

	// Prepare walker
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
	}

	// Seed queue with start vertex
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// visitationRecord returns scratch cleared, or a new record when scratch is nil.
func visitationRecord(scratch []bool, n int) ([]bool, error) {
	if scratch == nil {
		return make([]bool, n), nil
	}
	if len(scratch) != n {
		return nil, fmt.Errorf("%w: scratch length %d, want %d", ErrOptionViolation, len(scratch), n)
	}
	clear(scratch)

	return scratch, nil
}

// enqueue marks v visited at depth d, calls OnEnqueue, and adds it to the queue.
// Marking at enqueue time keeps any vertex from entering the queue twice.
func (w *walker) enqueue(v, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors in stored order, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", item.v, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth)
	}
	return nil
}
