// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. No self-loops, no parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random simple graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := requireVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// 2) Sample unordered pairs in a stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var include bool
				switch {
				case p == probMax:
					include = true
				case p == probMin:
					include = false
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
