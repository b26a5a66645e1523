package core

import "math"

// Layout is the canvas geometry used to place vertices on a circle.
type Layout struct {
	Width  float64
	Height float64
	// Margin is subtracted from the half-extent to get the circle radius.
	Margin float64
}

// DefaultLayout is an 800×600 canvas with an 80px margin.
func DefaultLayout() Layout {
	return Layout{Width: 800, Height: 600, Margin: 80}
}

// ApplyLayout places every vertex, in first-seen order, evenly around a circle
// centered on the canvas, starting at angle 0. A lone vertex sits at the
// center. Positions are computed once and never depend on an algorithm.
func (g *Graph) ApplyLayout(l Layout) {
	cx, cy := l.Width/2, l.Height/2
	radius := math.Min(cx, cy) - l.Margin
	n := len(g.order)
	if n == 1 {
		g.vertices[g.order[0]].Position = Point{X: cx, Y: cy}
		return
	}
	for i, id := range g.order {
		angle := 2 * math.Pi * float64(i) / float64(n)
		g.vertices[id].Position = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
}

// Distance is the straight-line distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
