package bfs

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrSessionNil is returned if a nil session pointer is passed.
	ErrSessionNil = errors.New("bfs: session is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters that customize a BFS run.
type BFSOptions struct {
	// Target, if non-empty, stops the search as soon as it is visited and
	// traces the path to it. A target that is not in the graph is simply
	// never reached.
	Target string
}

// DefaultOptions returns a BFSOptions with no target: the search visits
// every vertex reachable from the start.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithTarget sets the vertex the search is looking for.
func WithTarget(id string) Option {
	return func(o *BFSOptions) {
		o.Target = id
	}
}
