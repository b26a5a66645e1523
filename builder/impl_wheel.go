// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - wheel W_n = C_{n-1} plus a hub.
//
// Contract:
//   - n ≥ 4 (the rim must be a cycle of at least 3), else ErrTooFewVertices.
//   - The rim is Cycle(n-1) on id(0)..id(n-2); the hub "Center" comes last
//     and gets one spoke per rim vertex in rim order.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return errors.Wrapf(err, "%s: base cycle C_%d", methodWheel, n-1)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := link(g, cfg, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
