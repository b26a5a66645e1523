// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - star S_n with a fixed hub.
//
// Contract:
//   - n ≥ 2, else ErrTooFewVertices.
//   - The hub is "Center" and is added first; leaves are id(1)..id(n-1).
//   - Emits {Center, id(i)} in leaf order.

package builder

import "github.com/Chitragupta16/Where-s-My-Graph-Going/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star of n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return err
			}
			if err := link(g, cfg, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
