package bellmanford

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrSessionNil indicates that a nil *stepper.Session was passed.
	ErrSessionNil = errors.New("bellmanford: session is nil")

	// ErrEmptyTarget indicates that no target vertex was given.
	ErrEmptyTarget = errors.New("bellmanford: target vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the session's graph.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in graph")
)

// Options configures a Bellman-Ford run.
type Options struct {
	Source string
	Target string
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the goal vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}
