package astar

import (
	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Sentinel errors returned by AStar.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("astar: source vertex ID is empty")

	// ErrSessionNil indicates that a nil *stepper.Session was passed.
	ErrSessionNil = errors.New("astar: session is nil")

	// ErrEmptyTarget indicates that no goal vertex was given.
	ErrEmptyTarget = errors.New("astar: target vertex ID is empty")

	// ErrVertexNotFound indicates that the source or goal vertex does not
	// exist in the session's graph.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// HeuristicDivisor scales layout distance (pixels) down to edge-weight units.
const HeuristicDivisor = 50.0

// Heuristic estimates the remaining cost from id to goal.
type Heuristic func(g *core.Graph, id, goal string) float64

// LayoutHeuristic is the Euclidean distance between the laid-out positions
// of id and goal, divided by HeuristicDivisor. It depends on the canvas
// geometry, not on edge weights, so it may overestimate and the path found
// is then not guaranteed to be the cheapest.
func LayoutHeuristic(g *core.Graph, id, goal string) float64 {
	return core.Distance(g.Position(id), g.Position(goal)) / HeuristicDivisor
}

// Options configures an A* run.
type Options struct {
	Source    string
	Target    string
	Heuristic Heuristic
}

// Option is a functional option for AStar.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the goal vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithHeuristic replaces LayoutHeuristic. A nil fn is ignored.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// DefaultOptions returns Options using LayoutHeuristic.
func DefaultOptions() Options {
	return Options{Heuristic: LayoutHeuristic}
}
