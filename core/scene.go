// SPDX-License-Identifier: MIT
//
// File: scene.go
// Role: Presentation state (node fills, edge strokes) kept apart from Graph.
// Policy:
//   - A Scene is display-only; no algorithm reads it to make a decision.
//   - Edge styles are keyed by the unordered endpoint pair, so A→B and B→A
//     always share one style.
//   - Scene is mutated only between suspension points of the running step,
//     so it carries no lock.

package core

import "maps"

// Color is a CSS-style hex color.
type Color string

// Palette used by the algorithms.
const (
	ColorDefault Color = "#666"
	ColorGreen   Color = "#4CAF50"
	ColorBlue    Color = "#2196F3"
	ColorAmber   Color = "#FFC107"
	ColorOrange  Color = "#FF9800"
	ColorPurple  Color = "#9C27B0"
	ColorRed     Color = "#F44336"
)

// Stroke widths.
const (
	WidthDefault float64 = 2
	WidthActive  float64 = 3
	WidthTree    float64 = 4
)

// EdgeStyle is the stroke of one edge.
type EdgeStyle struct {
	Color Color
	Width float64
}

// DefaultEdgeStyle is the stroke of an untouched edge.
var DefaultEdgeStyle = EdgeStyle{Color: ColorDefault, Width: WidthDefault}

// Scene holds the presentation attributes the renderer draws.
type Scene struct {
	nodes map[string]Color
	edges map[pairKey]EdgeStyle
}

// NewScene returns a Scene where everything has its default style.
func NewScene() *Scene {
	return &Scene{
		nodes: make(map[string]Color),
		edges: make(map[pairKey]EdgeStyle),
	}
}

// SetNodeColor sets the fill of id.
func (s *Scene) SetNodeColor(id string, c Color) {
	s.nodes[id] = c
}

// NodeColor returns the fill of id.
func (s *Scene) NodeColor(id string) Color {
	if c, ok := s.nodes[id]; ok {
		return c
	}

	return ColorDefault
}

// SetEdgeStyle sets the stroke of the unordered pair {u, v}.
func (s *Scene) SetEdgeStyle(u, v string, c Color, width float64) {
	s.edges[keyOf(u, v)] = EdgeStyle{Color: c, Width: width}
}

// EdgeStyle returns the stroke of the unordered pair {u, v}.
func (s *Scene) EdgeStyle(u, v string) EdgeStyle {
	if st, ok := s.edges[keyOf(u, v)]; ok {
		return st
	}

	return DefaultEdgeStyle
}

// Reset restores every node and edge to its default style.
func (s *Scene) Reset() {
	clear(s.nodes)
	clear(s.edges)
}

// Touched reports whether any attribute differs from its default.
func (s *Scene) Touched() bool {
	for _, c := range s.nodes {
		if c != ColorDefault {
			return true
		}
	}
	for _, st := range s.edges {
		if st != DefaultEdgeStyle {
			return true
		}
	}

	return false
}

// Snapshot returns an independent copy of s.
func (s *Scene) Snapshot() *Scene {
	return &Scene{nodes: maps.Clone(s.nodes), edges: maps.Clone(s.edges)}
}
