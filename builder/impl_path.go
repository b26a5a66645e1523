// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - simple path P_n.
//
// Contract:
//   - n ≥ 2, else ErrTooFewVertices.
//   - Emits {id(i), id(i+1)} for i = 0..n-2.
//
// Determinism: vertex order is index order; neighbor lists read
// [prev, next] for every interior vertex.

package builder

import "github.com/Chitragupta16/Where-s-My-Graph-Going/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
