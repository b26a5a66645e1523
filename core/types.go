// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Point and Graph declarations, sentinel errors, constructor.
// Policy:
//   - Insertion order is the only iteration order; nothing is sorted.
//   - Weights belong to the unordered endpoint pair, never to a direction.
//   - Graph carries no presentation state; see scene.go.

package core

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that neither u→v nor v→u was declared.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that cannot take part in arithmetic (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrEmptyInput is returned by Parse when the input holds nothing but whitespace.
	ErrEmptyInput = errors.New("core: graph input is empty")
)

// DefaultWeight is the weight of every edge that was never given one.
const DefaultWeight float64 = 1

// Point is a position on the drawing canvas.
type Point struct {
	X, Y float64
}

// Vertex represents a node in the graph together with its layout position.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Position is assigned by ApplyLayout and is independent of any algorithm.
	Position Point
}

// Edge is one declared connection From→To.
//
// The direction is the one written in the input; weight and presentation
// lookups treat {From, To} as an unordered pair.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// pairKey identifies an unordered endpoint pair.
type pairKey struct {
	a, b string
}

func keyOf(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// Graph is the adjacency-list model built from declarations of the form
// "A: [B, C]".
//
// order holds every vertex in first-seen order. declared holds the vertices
// that own a declaration, in the order their first declaration appeared.
// adjacency[v] is v's neighbor list exactly as declared.
//
// A Graph is not safe for concurrent mutation; the visualizer builds it once
// per load and algorithms only read it.
type Graph struct {
	vertices  map[string]*Vertex
	order     []string
	declared  []string
	adjacency map[string][]string
	weights   map[pairKey]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]string),
		weights:   make(map[pairKey]float64),
	}
}
