package visualizer

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Request rejections. None of them starts a run.
var (
	// ErrNoGraph: nothing has been loaded yet.
	ErrNoGraph = errors.New("visualizer: no graph loaded")
	// ErrUnknownAlgorithm: the name matches no registry entry or alias.
	ErrUnknownAlgorithm = errors.New("visualizer: unknown algorithm")
	// ErrStartRequired: the algorithm needs a start vertex and none was given.
	ErrStartRequired = errors.New("visualizer: start node required")
	// ErrEndRequired: the algorithm needs an end vertex and none was given.
	ErrEndRequired = errors.New("visualizer: end node required")
	// ErrUnknownNode: a required start or end vertex is not in the graph.
	ErrUnknownNode = errors.New("visualizer: unknown node")
)

// Narration published by the driver itself.
const (
	ReadyMessage = "Ready to start visualization."
)

// Request names an algorithm and its endpoints. Start and End are trimmed
// before use. End is optional for BFS and DFS and ignored for the MST
// algorithms; Start is ignored by Kruskal.
type Request struct {
	Algorithm string
	Start     string
	End       string
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithRenderer draws every frame with r.
func WithRenderer(r stepper.Renderer) Option {
	return func(v *Visualizer) {
		if r != nil {
			v.renderer = r
		}
	}
}

// WithNarrator forwards every narration to n.
func WithNarrator(n stepper.Narrator) Option {
	return func(v *Visualizer) {
		if n != nil {
			v.narrator = n
		}
	}
}

// WithLayout sets the canvas used to place vertices.
func WithLayout(l core.Layout) Option {
	return func(v *Visualizer) { v.layout = l }
}

// WithController shares c, so a caller can hold the pacing knobs directly.
func WithController(c *stepper.Controller) Option {
	return func(v *Visualizer) {
		if c != nil {
			v.ctl = c
		}
	}
}

// WithLogger sets the logger for run lifecycle and step tracing.
func WithLogger(l *slog.Logger) Option {
	return func(v *Visualizer) {
		if l != nil {
			v.log = l
		}
	}
}
