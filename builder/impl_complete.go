// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - complete graph K_n.
//
// Contract:
//   - n ≥ 1, else ErrTooFewVertices. K_1 is a lone vertex with no declaration.
//   - Emits {id(i), id(j)} for i < j in lexicographic (i, j) order, so every
//     neighbor list ends up in index order.
//
// Complexity: O(n^2) edges, each O(n) to append; O(n^3) overall, which is
// fine for the sizes a canvas can show.

package builder

import "github.com/Chitragupta16/Where-s-My-Graph-Going/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
