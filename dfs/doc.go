// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, recording vertices in pre-order.
//   - Explicit (vertex, cursor) stack in place of recursion; the visit
//     order is exactly the recursive one.
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Caller-supplied visitation buffer (WithScratch)
//
// Why:
//   - Enumerate the connected component of a vertex.
//   - Provide a deterministic baseline order for comparison with BFS.
//
// Determinism:
//
//	Among several unvisited neighbors the one listed first by
//	core.Graph.Neighbors is entered first. With the default newest-first
//	neighbor order, the most recently added edge is followed first.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor, Scratch
//   - DFSResult: pre-order Order and per-vertex Depth (-1 when unreached)
//
// Complexity:
//
//   - DFS: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - core.ErrOutOfRange      start vertex not in [0, VertexCount())
//   - ErrOptionViolation      scratch buffer length mismatch
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Usage:
//
//	res, err := dfs.DFS(g, 0)
//	if err != nil {
//	    // handle errors.Is(err, core.ErrOutOfRange) etc.
//	}
//	fmt.Println(res.Order)
package dfs
