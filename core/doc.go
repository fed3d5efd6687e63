// Package core provides a small, thread-safe in-memory undirected Graph over
// dense integer vertices.
//
// The Graph G = (V,E) has a vertex count fixed at construction and grows only
// by edge insertion:
//
//   - Vertices are indices 0..n-1; no removal or relabeling.
//   - AddEdge(u, v) links both endpoints (the adjacency relation is symmetric).
//   - Each vertex owns an adjacency slice kept in insertion order.
//   - Neighbors(v) reads it back newest-first by default, so the most
//     recently added neighbor is visited first by traversals.
//   - A sync.RWMutex lets any number of traversals read concurrently.
//
// Configuration Options (GraphOption):
//
//	– WithMaxVertices(max int)
//	    Vertex-count ceiling for NewGraph (default DefaultMaxVertices = 100).
//
//	– WithLoops() / WithoutLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithNeighborOrder(order NeighborOrder)
//	    NewestFirst (default) or OldestFirst enumeration of neighbor lists.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(src, dest int) error                         // O(1) amortized
//	Neighbors(v int) ([]int, error)                      // O(deg v), copy
//	NeighborAt(v, i int) (int, bool)                     // O(1), no copy
//	Degree(v int) (int, error)                           // O(1)
//	HasEdge(u, v int) bool                               // O(min deg)
//	AdjacencyList() [][]int                              // O(V+E), copy
//	Display(w io.Writer) error                           // O(V+E)
//	Clone() *Graph                                       // O(V+E)
//
// Errors are sentinels (ErrInvalidArgument, ErrOutOfRange, ErrLoopNotAllowed)
// wrapped with call context; branch on them with errors.Is.
package core
