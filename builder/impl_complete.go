// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Emits unordered pairs {i,j}, i<j, for i asc then j asc.
//
// Complexity:
//   - Time: O(n²). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
