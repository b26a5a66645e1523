// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go - sentinel errors; callers branch with errors.Is.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrNilGraph indicates a nil *core.Graph input.
	ErrNilGraph = errors.New("matrix: graph is nil")
	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
	// ErrUnknownVertex indicates an ID that has no row.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")
	// ErrNegativeCycle indicates that some vertex reaches itself at negative cost.
	ErrNegativeCycle = errors.New("matrix: negative cycle")
)

func matrixErrorf(op string, err error) error {
	return errors.Wrapf(err, "matrix: %s", op)
}
