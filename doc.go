// Package graphwalk is a small, thread-safe library for undirected graphs
// stored as adjacency lists, with depth-first and breadth-first traversal.
//
// What is in the box?
//
//	core/      - Graph: fixed vertex count, symmetric AddEdge, ordered neighbor lists
//	dfs/       - DFS: explicit-stack pre-order walk with hooks and depth limit
//	bfs/       - BFS: FIFO walk marking vertices at enqueue, with depth layering
//	walk/      - select a traversal by name, fan out from every vertex, components
//	builder/   - deterministic fixtures: Path, Cycle, Star, Complete, Grid, RandomSparse
//	graphfile/ - load a Graph from a YAML edge list
//	render/    - turn a visit order into "0 2 1"
//	cmd/graphwalk - command-line front end
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(0, 2)
//
//	res, _ := dfs.DFS(g, 0)
//	fmt.Println(render.Sequence(res.Order)) // 0 2 1
//
// Neighbor lists are read newest-first by default, so the most recently
// added neighbor is explored first. core.WithNeighborOrder(core.OldestFirst)
// switches to insertion order.
package graphwalk
