// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and declaration lifecycle, adjacency queries, weight table.
// Determinism:
//   - Vertices() follows first-seen order.
//   - Edges() follows declaration order, then neighbor order.

package core

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	g.order = append(g.order, id)

	return nil
}

// Declare records the neighbor list of id as written in the input.
//
// Every referenced neighbor is created if absent. Declaring the same id again
// replaces its neighbor list but keeps the position of the first declaration,
// which is what drives edge order.
func (g *Graph) Declare(id string, neighbors []string) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}
	for _, nb := range neighbors {
		if err := g.AddVertex(nb); err != nil {
			return errors.Wrapf(err, "core: declare %q", id)
		}
	}
	if _, seen := g.adjacency[id]; !seen {
		g.declared = append(g.declared, id)
	}
	g.adjacency[id] = slices.Clone(neighbors)
	if g.adjacency[id] == nil {
		g.adjacency[id] = []string{}
	}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertex IDs in first-seen order.
func (g *Graph) Vertices() []string {
	return slices.Clone(g.order)
}

// Declared returns the vertices that own a declaration, in declaration order.
func (g *Graph) Declared() []string {
	return slices.Clone(g.declared)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// Neighbors returns the declared neighbor list of id. Vertices that were only
// referenced, never declared, have none.
func (g *Graph) Neighbors(id string) []string {
	return slices.Clone(g.adjacency[id])
}

// Edges returns every declared edge with its current weight.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, from := range g.declared {
		for _, to := range g.adjacency[from] {
			edges = append(edges, Edge{From: from, To: to, Weight: g.Weight(from, to)})
		}
	}

	return edges
}

// EdgeCount returns the number of declared edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, from := range g.declared {
		n += len(g.adjacency[from])
	}

	return n
}

// HasEdge reports whether u→v or v→u was declared.
func (g *Graph) HasEdge(u, v string) bool {
	return slices.Contains(g.adjacency[u], v) || slices.Contains(g.adjacency[v], u)
}

// Weight returns the weight of the unordered pair {u, v}. Pairs without an
// explicit weight, including pairs with no edge at all, weigh DefaultWeight.
func (g *Graph) Weight(u, v string) float64 {
	if w, ok := g.weights[keyOf(u, v)]; ok {
		return w
	}

	return DefaultWeight
}

// SetWeight assigns w to the unordered pair {u, v}.
func (g *Graph) SetWeight(u, v string, w float64) error {
	if math.IsNaN(w) {
		return errors.Wrapf(ErrBadWeight, "core: %s-%s", u, v)
	}
	if !g.HasVertex(u) {
		return errors.Wrapf(ErrVertexNotFound, "core: %q", u)
	}
	if !g.HasVertex(v) {
		return errors.Wrapf(ErrVertexNotFound, "core: %q", v)
	}
	if !g.HasEdge(u, v) {
		return errors.Wrapf(ErrEdgeNotFound, "core: %s-%s", u, v)
	}
	g.weights[keyOf(u, v)] = w

	return nil
}

// HasNegativeWeight reports whether any declared edge weighs less than zero.
func (g *Graph) HasNegativeWeight() bool {
	for _, w := range g.weights {
		if w < 0 {
			return true
		}
	}

	return false
}

// Vertex returns a copy of the vertex with the given id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, errors.Wrapf(ErrVertexNotFound, "core: %q", id)
	}

	return *v, nil
}

// Position returns the layout position of id, or the zero Point if absent.
func (g *Graph) Position(id string) Point {
	if v, ok := g.vertices[id]; ok {
		return v.Position
	}

	return Point{}
}
