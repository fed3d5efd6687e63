// File: methods.go
// Role: Edge insertion and neighborhood queries.
// Determinism:
//   - Neighbors() order depends only on insertion order and Graph.Order().
//   - AdjacencyList() applies the same order to every vertex.
// Concurrency:
//   - AddEdge holds the write lock; every query holds the read lock.
//   - Returned slices are copies and never alias internal storage.

package core

import "fmt"

// AddEdge links src and dest in both directions.
//
// dest is added to src's list and src to dest's list. With loops enabled a
// self-loop adds a single self-reference. Parallel edges are kept: each call
// adds one more reference on each side.
//
// Errors:
//   - ErrOutOfRange: src or dest outside [0, VertexCount()).
//   - ErrLoopNotAllowed: src == dest and WithLoops was not given.
//
// On error the graph is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest int) error {
	if err := g.checkVertex(src); err != nil {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", src, dest, err)
	}
	if err := g.checkVertex(dest); err != nil {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", src, dest, err)
	}
	if src == dest && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", src, dest, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[src] = append(g.adj[src], dest)
	if src != dest {
		g.adj[dest] = append(g.adj[dest], src)
	}
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of v's neighbor list in the graph's NeighborOrder.
// Returns ErrOutOfRange if v is invalid.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.orderedCopy(g.adj[v]), nil
}

// orderedCopy returns list read back in g.order. Caller holds at least the read lock.
func (g *Graph) orderedCopy(list []int) []int {
	out := make([]int, len(list))
	if g.order == OldestFirst {
		copy(out, list)
		return out
	}
	for i, v := range list {
		out[len(list)-1-i] = v
	}

	return out
}

// NeighborAt returns the i-th entry of Neighbors(v) without copying the list.
// ok is false when v is not a vertex or i is outside [0, Degree(v)).
func (g *Graph) NeighborAt(v, i int) (nbr int, ok bool) {
	if !g.Contains(v) {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adj[v]
	if i < 0 || i >= len(list) {
		return 0, false
	}
	if g.order == OldestFirst {
		return list[i], true
	}

	return list[len(list)-1-i], true
}

// Degree returns the length of v's neighbor list.
// A self-loop counts once.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// HasEdge reports whether at least one edge joins u and v.
// Out-of-range indices simply report false.
//
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.Contains(u) || !g.Contains(v) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// scan the shorter list; adjacency is symmetric
	from, to := u, v
	if len(g.adj[v]) < len(g.adj[u]) {
		from, to = v, u
	}
	for _, w := range g.adj[from] {
		if w == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of successful AddEdge calls.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AdjacencyList returns a snapshot of every neighbor list, indexed by vertex,
// each in the graph's NeighborOrder.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.n)
	for v, list := range g.adj {
		out[v] = g.orderedCopy(list)
	}

	return out
}

// Clone returns a deep copy with the same options and edges.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		maxVertices: g.maxVertices,
		allowLoops:  g.allowLoops,
		order:       g.order,
		n:           g.n,
		adj:         make([][]int, g.n),
		edgeCount:   g.edgeCount,
	}
	for v, list := range g.adj {
		c.adj[v] = append([]int(nil), list...)
	}

	return c
}
