// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, cfg, methodPath, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
