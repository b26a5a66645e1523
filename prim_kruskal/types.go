// Package prim_kruskal defines sentinel errors for the animated MST algorithms.
package prim_kruskal

import (
	"github.com/cockroachdb/errors"
)

// ErrSessionNil indicates that a nil *stepper.Session was passed to Prim or Kruskal.
var ErrSessionNil = errors.New("prim_kruskal: session is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrVertexNotFound indicates that Prim's root is not in the graph.
var ErrVertexNotFound = errors.New("prim_kruskal: root vertex not found")
