// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - weighted adjacency matrix of a core.Graph.
//
// Contract:
//   - Order follows g.Vertices(); Index is its inverse.
//   - (i, j) is the edge weight when j is declared a neighbor of i, +Inf
//     otherwise, and 0 on the diagonal unless a self-loop is declared.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Adjacency is a graph's weighted adjacency matrix together with the
// vertex ↔ index mapping.
type Adjacency struct {
	Order   []string
	Index   map[string]int
	Weights *Dense
}

// NewAdjacency builds the adjacency matrix of g.
// Complexity: O(V² + E).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, matrixErrorf("NewAdjacency", ErrNilGraph)
	}
	order := g.Vertices()
	idx := make(map[string]int, len(order))
	for i, id := range order {
		idx[id] = i
	}

	w := newDense(len(order), math.Inf(1))
	for _, e := range g.Edges() {
		if err := w.Set(idx[e.From], idx[e.To], e.Weight); err != nil {
			return nil, matrixErrorf("NewAdjacency", err)
		}
	}

	return &Adjacency{Order: order, Index: idx, Weights: w}, nil
}

// Weight returns the (u, v) entry.
func (a *Adjacency) Weight(u, v string) (float64, error) {
	i, j, err := a.indices(u, v)
	if err != nil {
		return 0, err
	}

	return a.Weights.At(i, j)
}

// Symmetric reports whether every declaration is mirrored with the same weight.
func (a *Adjacency) Symmetric() bool {
	n := a.Weights.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.Weights.data[i*n+j] != a.Weights.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

func (a *Adjacency) indices(u, v string) (int, int, error) {
	i, ok := a.Index[u]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownVertex, "matrix: %q", u)
	}
	j, ok := a.Index[v]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownVertex, "matrix: %q", v)
	}

	return i, j, nil
}
