// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - shared emission helpers for the impl_*.go constructors.
//
// Policy:
//   • Vertices are added up front in index order, so the circular layout
//     follows the index and not the order edges happen to be emitted.
//   • An undirected edge {u, v} is two declarations: v appended to u's list
//     and u appended to v's list. Weights are drawn once per edge.

package builder

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// centerVertexID is the fixed hub of Star and Wheel.
const centerVertexID = "Center"

// addVertices inserts cfg.idFn(0..n-1) into g and returns the IDs in order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: AddVertex(%s)", method, ids[i])
		}
	}

	return ids, nil
}

// link emits the undirected edge {u, v} and assigns it a weight from
// cfg.weightFn. Repeating a link adds no neighbor twice.
// Complexity: O(deg(u) + deg(v)).
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := appendNeighbor(g, u, v); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: Declare(%s→%s)", method, u, v)
	}
	if err := appendNeighbor(g, v, u); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: Declare(%s→%s)", method, v, u)
	}
	w := cfg.weightFn(cfg.rng)
	if w == core.DefaultWeight {
		return nil
	}
	if err := g.SetWeight(u, v, w); err != nil {
		return errors.Wrapf(errors.Mark(err, ErrConstructFailed), "%s: SetWeight(%s-%s, w=%s)",
			method, u, v, core.FormatWeight(w))
	}

	return nil
}

// appendNeighbor redeclares u with v appended, unless v is already listed.
func appendNeighbor(g *core.Graph, u, v string) error {
	nbrs := g.Neighbors(u)
	if slices.Contains(nbrs, v) {
		return nil
	}

	return g.Declare(u, append(nbrs, v))
}

// tooFew builds the uniform size-validation error.
func tooFew(method string, n, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, n, min)
}
