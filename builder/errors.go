// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with errors.Wrapf and the method name,
//     e.g. "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not emit its topology,
// either because the graph rejected a declaration or because a nil constructor
// was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSample indicates that Sample was asked for a name it does not ship.
var ErrUnknownSample = errors.New("builder: unknown sample")
