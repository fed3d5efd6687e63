// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_edges.go - implementation of Edges(pairs...) constructor.
//
// Contract:
//   - Inserts each pair in the given order; the order decides neighbor order.
//   - Stops at the first failing pair and reports its index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that inserts an explicit edge list.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, p := range pairs {
			if err := link(g, cfg, methodEdges, p[0], p[1]); err != nil {
				return fmt.Errorf("pair #%d: %w", i, err)
			}
		}

		return nil
	}
}
