// SPDX-License-Identifier: MIT
// Package: matrix
//
// dense.go - square row-major float64 storage.

package matrix

import (
	"math"
	"slices"
)

// Dense is an n×n matrix stored row-major.
type Dense struct {
	n    int
	data []float64
}

// newDense returns an n×n matrix with fill everywhere and 0 on the diagonal.
func newDense(n int, fill float64) *Dense {
	d := &Dense{n: n, data: make([]float64, n*n)}
	for i := range d.data {
		d.data[i] = fill
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d
}

// Size returns n.
func (d *Dense) Size() int { return d.n }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set stores v at (i, j).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return matrixErrorf("Set", ErrOutOfRange)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (d *Dense) Row(i int) []float64 {
	if i < 0 || i >= d.n {
		return nil
	}

	return slices.Clone(d.data[i*d.n : (i+1)*d.n])
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	return &Dense{n: d.n, data: slices.Clone(d.data)}
}

// Reachable reports whether (i, j) holds a finite value.
func (d *Dense) Reachable(i, j int) bool {
	v, err := d.At(i, j)

	return err == nil && !math.IsInf(v, 1)
}
