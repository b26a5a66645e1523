// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - simple cycle C_n.
//
// Contract:
//   - n ≥ 3, else ErrTooFewVertices.
//   - Emits {id(i), id((i+1) mod n)} for i = 0..n-1.
//
// Determinism: id(0) lists [id(1), id(n-1)]; the closing edge is emitted last.

package builder

import "github.com/Chitragupta16/Where-s-My-Graph-Going/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := range ids {
			if err = link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
