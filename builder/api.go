// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and take vertex indices relative to cfg.offset.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including identical neighbor-list order.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Use only vertices [cfg.offset, cfg.offset+k) for their own size k.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any error is wrapped with the context "BuildGraph: %w".
//
// Errors:
//   - core.ErrInvalidArgument from NewGraph for a bad n.
//   - Builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - core.ErrOutOfRange when a constructor needs more vertices than n.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shifted returns a Constructor that runs c with every vertex index moved up
// by offset. It is how several shapes are placed side by side in one graph:
//
//	BuildGraph(6, nil, nil, Path(3), Shifted(3, Cycle(3)))
func Shifted(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if offset < 0 {
			return fmt.Errorf("Shifted: offset=%d < 0: %w", offset, ErrTooFewVertices)
		}
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += offset

		return c(g, cfg)
	}
}

// requireVertices checks that [cfg.offset, cfg.offset+k) fits in g.
func requireVertices(g *core.Graph, cfg builderConfig, method string, k int) error {
	if cfg.offset+k > g.VertexCount() {
		return fmt.Errorf("%s: needs vertices [%d, %d) but graph has %d: %w",
			method, cfg.offset, cfg.offset+k, g.VertexCount(), core.ErrOutOfRange)
	}

	return nil
}

// link adds the edge (offset+u, offset+v) with method context on failure.
func link(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	a, b := cfg.offset+u, cfg.offset+v
	if err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, a, b, err)
	}

	return nil
}
