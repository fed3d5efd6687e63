// File: types.go
// Role: Graph type, construction options and sentinel errors.
// Invariants:
//   - Vertices are dense indices in [0, VertexCount()), fixed at construction.
//   - The only mutation is AddEdge.
// Errors:
//   - ErrInvalidArgument: bad vertex count passed to NewGraph.
//   - ErrOutOfRange: vertex index outside [0, VertexCount()).
//   - ErrLoopNotAllowed: self-loop when loops are disabled.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultMaxVertices is the vertex-count ceiling applied by NewGraph
// unless WithMaxVertices overrides it.
const DefaultMaxVertices = 100

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a negative or too large vertex count.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NeighborOrder selects the enumeration order of a vertex's neighbor list.
type NeighborOrder int

const (
	// NewestFirst enumerates the most recently added neighbor first.
	// This is the default and reproduces prepend-style adjacency lists.
	NewestFirst NeighborOrder = iota

	// OldestFirst enumerates neighbors in insertion order.
	OldestFirst
)

// String returns the configuration name of the order.
func (o NeighborOrder) String() string {
	switch o {
	case NewestFirst:
		return "newest-first"
	case OldestFirst:
		return "oldest-first"
	default:
		return fmt.Sprintf("NeighborOrder(%d)", int(o))
	}
}

// ParseNeighborOrder maps "newest-first" / "oldest-first" to a NeighborOrder.
func ParseNeighborOrder(s string) (NeighborOrder, error) {
	switch s {
	case "newest-first", "":
		return NewestFirst, nil
	case "oldest-first":
		return OldestFirst, nil
	default:
		return NewestFirst, fmt.Errorf("core: unknown neighbor order %q: %w", s, ErrInvalidArgument)
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxVertices raises or lowers the vertex-count ceiling enforced by NewGraph.
// Panics on max <= 0: a graph that can hold nothing is a programmer error.
func WithMaxVertices(max int) GraphOption {
	if max <= 0 {
		panic(fmt.Sprintf("core: WithMaxVertices(%d): must be positive", max))
	}
	return func(g *Graph) { g.maxVertices = max }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithoutLoops rejects self-loops, the default. Placed after WithLoops it
// revokes it.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithNeighborOrder sets how Neighbors enumerates each adjacency list.
func WithNeighborOrder(o NeighborOrder) GraphOption {
	if o != NewestFirst && o != OldestFirst {
		panic(fmt.Sprintf("core: WithNeighborOrder(%d): unknown order", int(o)))
	}
	return func(g *Graph) { g.order = o }
}

// Graph is an undirected graph over vertices 0..n-1 stored as adjacency lists.
//
// Each adjacency list is an owned slice kept in insertion order; the
// configured NeighborOrder decides the direction in which it is read back.
// mu guards adj and edgeCount; the vertex count never changes.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	maxVertices int
	allowLoops  bool
	order       NeighborOrder

	// Storage
	n         int
	adj       [][]int // adj[v] in insertion order
	edgeCount int
}

// NewGraph creates a Graph with vertexCount vertices and no edges.
// By default self-loops are rejected, neighbors are enumerated newest-first,
// and vertexCount may not exceed DefaultMaxVertices.
//
// Returns ErrInvalidArgument if vertexCount is negative or above the ceiling.
// Complexity: O(vertexCount).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	g := &Graph{maxVertices: DefaultMaxVertices, order: NewestFirst}
	for _, opt := range opts {
		opt(g)
	}

	if vertexCount < 0 {
		return nil, fmt.Errorf("core: vertex count %d is negative: %w", vertexCount, ErrInvalidArgument)
	}
	if vertexCount > g.maxVertices {
		return nil, fmt.Errorf("core: vertex count %d exceeds maximum %d: %w",
			vertexCount, g.maxVertices, ErrInvalidArgument)
	}

	g.n = vertexCount
	g.adj = make([][]int, vertexCount)

	return g, nil
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Order reports the neighbor enumeration order.
func (g *Graph) Order() NeighborOrder { return g.order }

// MaxVertices reports the vertex-count ceiling the graph was built under.
func (g *Graph) MaxVertices() int { return g.maxVertices }

// checkVertex returns a wrapped ErrOutOfRange if v is not a valid index.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("core: vertex %d not in [0, %d): %w", v, g.n, ErrOutOfRange)
	}

	return nil
}

// Contains reports whether v is a valid vertex index.
func (g *Graph) Contains(v int) bool {
	return v >= 0 && v < g.n
}
