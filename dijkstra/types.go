// Package dijkstra defines the sentinel errors and functional options for
// the animated Dijkstra shortest-path search.
//
// Options:
//
//	– Source: ID of the starting vertex (must be non-empty and present in the graph).
//	– Target: ID of the goal vertex (must be non-empty and present in the graph).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrSessionNil      if the provided session pointer is nil.
//	– ErrEmptyTarget     if the provided target ID is empty.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
package dijkstra

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrSessionNil indicates that a nil *stepper.Session was passed to Dijkstra.
	ErrSessionNil = errors.New("dijkstra: session is nil")

	// ErrEmptyTarget indicates that no target vertex was given. The animated
	// search always runs towards a single goal.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the session's graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source string // The ID of the source vertex
	Target string // The ID of the goal vertex
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the goal vertex ID. Must be provided.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// DefaultOptions returns an Options struct with the given source and no
// target. Validation happens in Dijkstra.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
