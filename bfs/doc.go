// Package bfs provides breadth-first search over a core.Graph,
// returning visit order and unweighted distances.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start, -1 for unreached vertices
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Queue discipline
//
//	A vertex is marked visited when it is enqueued, not when it is dequeued,
//	so it enters the queue at most once. The queue is strict FIFO and
//	neighbors are enqueued in the graph's stored order (newest-first by
//	default, see core.WithNeighborOrder). The visit sequence is therefore
//	fully reproducible for a given graph.
//
// Complexity (V = VertexCount, E = EdgeCount)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth, and the visitation record
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, core.ErrOutOfRange, ErrOptionViolation, ctx error, or hook error
//	}
//
//	res, err = bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook when a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//   - WithScratch(buf):            reuse buf as the visitation record.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrOutOfRange      (wrapped) if start is not a vertex of g.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth, wrong scratch length).
//   - Wrapped user-supplied hook errors from OnVisit, returned with the partial result.
package bfs
