// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex r*cols + c (row-major).
//   - For each cell in row-major order emit Right then Bottom when present.
//
// Complexity:
//   - Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIndex(r, c, cols)
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, GridIndex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, GridIndex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridIndex maps cell (r,c) of a grid with cols columns to its vertex index.
func GridIndex(r, c, cols int) int {
	return r*cols + c
}
