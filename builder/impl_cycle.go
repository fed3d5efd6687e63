// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need loops or parallel edges.
//   - Emits the path 0-1-…-(n-1), then the closing edge (n-1) - 0.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		// close the ring
		return link(g, cfg, methodCycle, n-1, 0)
	}
}
