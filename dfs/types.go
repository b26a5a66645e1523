// Package dfs defines types and options for animated depth-first search.
package dfs

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrSessionNil is returned when a nil *stepper.Session is passed to DFS.
	ErrSessionNil = errors.New("dfs: session is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(s, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Target, if non-empty, ends the traversal the moment it is entered.
	Target string
}

// DefaultOptions returns DFSOptions with no target.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithTarget sets the vertex the traversal is looking for.
func WithTarget(id string) Option {
	return func(o *DFSOptions) {
		o.Target = id
	}
}
