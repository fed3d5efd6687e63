// Package walk selects a traversal by name and runs it, either once from a
// single start vertex or concurrently from every vertex of a graph.
//
// walk is the seam between configuration (strings such as "dfs" coming from
// flags or YAML) and the typed traversal packages dfs and bfs. It adds no
// traversal semantics of its own: Run(ctx, g, DFS, s) returns exactly
// dfs.DFS(g, s).Order.
package walk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
)

// Algorithm names a traversal strategy.
type Algorithm int

const (
	// DFS is depth-first pre-order.
	DFS Algorithm = iota
	// BFS is breadth-first, strict FIFO.
	BFS
)

// DefaultConcurrency bounds FromEach when the caller passes a non-positive limit.
const DefaultConcurrency = 4

var (
	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for names
	// or values outside {DFS, BFS}.
	ErrUnknownAlgorithm = errors.New("walk: unknown algorithm")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("walk: graph is nil")
)

// String returns "dfs" or "bfs".
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dfs" or "bfs" (any case, surrounding space ignored)
// to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q (want dfs or bfs)", ErrUnknownAlgorithm, name)
	}
}

// Run traverses g from start with algo and returns the visit order.
// Errors from the traversal (out-of-range start, cancellation) are returned
// unchanged so callers can match them with errors.Is.
func Run(ctx context.Context, g *core.Graph, algo Algorithm, start int) ([]int, error) {
	return run(ctx, g, algo, start, nil)
}

// run dispatches one traversal, reusing scratch when non-nil.
func run(ctx context.Context, g *core.Graph, algo Algorithm, start int, scratch []bool) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	switch algo {
	case DFS:
		res, err := dfs.DFS(g, start, dfs.WithContext(ctx), dfs.WithScratch(scratch))
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	case BFS:
		res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithScratch(scratch))
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// FromEach runs algo from every vertex of g on a bounded worker pool and
// returns the orders indexed by start vertex: out[s] is Run(ctx, g, algo, s).
//
// At most maxConcurrency traversals run at once (DefaultConcurrency when
// maxConcurrency ≤ 0). Each traversal owns its visitation record, and the
// graph is only read, so FromEach may itself run alongside other readers.
// Errors from failed traversals are joined and returned with a nil out.
func FromEach(ctx context.Context, g *core.Graph, algo Algorithm, maxConcurrency int) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if algo != DFS && algo != BFS {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultConcurrency
	}

	n := g.VertexCount()
	out := make([][]int, n)
	p := pool.New().WithMaxGoroutines(maxConcurrency).WithErrors()
	for s := 0; s < n; s++ {
		p.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			order, err := run(ctx, g, algo, s, nil)
			if err != nil {
				return fmt.Errorf("walk: %v from %d: %w", algo, s, err)
			}
			out[s] = order
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
