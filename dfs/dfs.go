// Package dfs implements depth-first search on core.Graph.
//
// The walk keeps an explicit stack of (vertex, neighbor cursor) frames instead
// of recursing, so it holds at most V frames and cannot overflow the
// goroutine stack on long paths. Frames hold only a cursor; neighbors are
// read in place with core.Graph.NeighborAt. The visit order is identical to the
// recursive formulation: enter a vertex, then descend into each unvisited
// neighbor in Neighbors() order before moving to the next.
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack, the visitation record and Depth.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants.
//   - WithMaxDepth(limit)       stops descending beyond given depth (>=0).
//   - WithFilterNeighbor(fn)    filters edges; return false to skip.
//   - WithScratch(buf)          reuses a caller-owned visitation record.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrOutOfRange        if start is not a vertex of g.
//   - ErrOptionViolation        if the scratch buffer has the wrong length.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	v     int // vertex being explored
	depth int // tree depth of v
	next  int // cursor into Neighbors(v)
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph // underlying graph
	opts    DFSOptions  // traversal options
	res     *DFSResult  // result collector
	visited []bool      // visitation record, scoped to this call
	stack   []frame
}

// DFS performs depth-first search on graph g from start and returns the
// pre-order visit sequence. Only the connected component of start is visited.
// On a hook error or cancellation the partial result is returned with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	n := g.VertexCount()
	if !g.Contains(start) {
		return nil, fmt.Errorf("dfs: start vertex %d not in [0, %d): %w", start, n, core.ErrOutOfRange)
	}

	// 4. Visitation record: fresh, or the caller's buffer cleared
	visited, err := visitationRecord(dopts.Scratch, n)
	if err != nil {
		return nil, err
	}

	// 5. Initialize result with capacity hint
	res := &DFSResult{
		Order: make([]int, 0, n),
		Depth: make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		res:     res,
		visited: visited,
		stack:   make([]frame, 0, n),
	}

	return res, w.run(start)
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

// run drives the frame stack until it empties or an error stops it.
func (w *dfsWalker) run(start int) error {
	if err := w.checkCtx(); err != nil {
		return err
	}
	if err := w.enter(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check (once per step)
		if err := w.checkCtx(); err != nil {
			return err
		}

		top := &w.stack[len(w.stack)-1]
		nbr, ok := w.graph.NeighborAt(top.v, top.next)

		// 2. Exhausted frame: post-order and pop
		if !ok {
			v, depth := top.v, top.depth
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(v, depth); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
				}
			}
			continue
		}

		// 3. Advance the cursor and consider the next neighbor
		top.next++

		if w.visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, nbr) {
			continue
		}
		nextDepth := top.depth + 1
		if w.opts.MaxDepth >= 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// 4. Descend; enter may grow the stack, so top is not used after this
		if err := w.enter(nbr, nextDepth); err != nil {
			return err
		}
	}

	return nil
}

// enter marks v visited, records it, runs OnVisit and pushes its frame.
func (w *dfsWalker) enter(v, depth int) error {
	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	w.stack = append(w.stack, frame{v: v, depth: depth})

	return nil
}

func (w *dfsWalker) checkCtx() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}
