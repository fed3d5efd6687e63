// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1.
//   - Emits spokes 0 - i in increasing leaf order, so with the default
//     newest-first neighbor order the hub lists its leaves n-1..1.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that builds a star S_n with hub 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, cfg, methodStar, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, starHub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
