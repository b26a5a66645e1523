// Package stepper defines the execution contract shared by every animated
// algorithm: the Status and Outcome a run ends with, the Controller that
// paces and pauses it, and the Session that emits steps.
package stepper

import (
	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Sentinel errors for step execution.
var (
	// ErrCancelled is returned by Frame and Step once the run's context is done.
	// Algorithms turn it into a StatusCancelled outcome through Session.Stop.
	ErrCancelled = errors.New("stepper: run cancelled")

	// ErrNilGraph is returned when a Session is built without a graph.
	ErrNilGraph = errors.New("stepper: graph is nil")

	// ErrSpeedOutOfRange is returned by SetSpeed for levels outside [MinSpeed, MaxSpeed].
	ErrSpeedOutOfRange = errors.New("stepper: speed level out of range")
)

// Status is the terminal condition of a run.
type Status int

const (
	// StatusCompleted: a traversal without a target exhausted its frontier.
	StatusCompleted Status = iota
	// StatusPathFound: the target was reached and a path reconstructed.
	StatusPathFound
	// StatusNoPath: the target is unreachable or absent.
	StatusNoPath
	// StatusNegativeCycle: Bellman-Ford found a cycle of negative weight.
	StatusNegativeCycle
	// StatusMST: a spanning tree (or forest) was built.
	StatusMST
	// StatusCancelled: the driver cancelled the run mid-way.
	StatusCancelled
)

var statusNames = [...]string{
	StatusCompleted:     "completed",
	StatusPathFound:     "path-found",
	StatusNoPath:        "no-path",
	StatusNegativeCycle: "negative-cycle-detected",
	StatusMST:           "mst",
	StatusCancelled:     "cancelled",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Outcome is what a run reports to the driver.
type Outcome struct {
	Status Status

	// Path and Cost are set for StatusPathFound. Cost is the edge count for
	// unweighted traversals and the summed edge weight otherwise.
	Path []string
	Cost float64

	// Tree and TotalWeight are set for StatusMST.
	Tree        []core.Edge
	TotalWeight float64

	// Visited is the number of vertices a traversal marked visited.
	Visited int

	// Steps is the number of numbered steps the run emitted.
	Steps int

	// Narration is the last message the run published.
	Narration string
}

// Renderer draws the graph with its current presentation state. Draw may be
// called any number of times and must have no effect beyond output.
type Renderer interface {
	Draw(g *core.Graph, sc *core.Scene) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(g *core.Graph, sc *core.Scene) error

// Draw calls f(g, sc).
func (f RendererFunc) Draw(g *core.Graph, sc *core.Scene) error { return f(g, sc) }

// Narrator receives the human-readable status line once per step.
type Narrator interface {
	Narrate(msg string)
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(msg string)

// Narrate calls f(msg).
func (f NarratorFunc) Narrate(msg string) { f(msg) }

type nopRenderer struct{}

func (nopRenderer) Draw(*core.Graph, *core.Scene) error { return nil }

type nopNarrator struct{}

func (nopNarrator) Narrate(string) {}
