// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - rows×cols 4-neighborhood grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1, else ErrTooFewVertices.
//   - Cell (r, c) is id(r*cols + c), added row-major.
//   - For each cell in row-major order: link right, then link down.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				methodGrid, rows, cols, minGridDim)
		}
		ids, err := addVertices(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
