// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model: 2D orthogonal grid with 4-neighborhood, cells numbered
// row-major (cell (r,c) is local vertex r*cols + c).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices). A 1×1 grid has no edges.
//   - For each cell in row-major order emit Right (r,c+1) then Bottom (r+1,c)
//     where they exist. Under WithDirected the grid is a DAG flowing right/down.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const minGridDim = 1

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *blueprint, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		b.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					b.connect(u, u+1, cfg.weight())
				}
				if r+1 < rows {
					b.connect(u, u+cols, cfg.weight())
				}
			}
		}

		return nil
	}
}
