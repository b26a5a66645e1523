// SPDX-License-Identifier: MIT
// Package: matrix
//
// floydwarshall.go - all-pairs shortest distances.
//
// Contract:
//   - +Inf means "no path"; the diagonal starts at 0.
//   - Loop order is fixed (k → i → j) and only strict improvements are kept,
//     so results are deterministic.
//   - A negative diagonal entry after the closure means a negative cycle.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// Distances holds the shortest distance between every ordered pair.
type Distances struct {
	*Adjacency
	Dist *Dense
}

// FloydWarshall computes all-pairs shortest distances over a. The adjacency
// matrix itself is left untouched. If a negative cycle exists the distances
// are still returned, together with ErrNegativeCycle.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(a *Adjacency) (*Distances, error) {
	d := a.Weights.Clone()
	floydWarshallInPlace(d)

	out := &Distances{Adjacency: a, Dist: d}
	for i := 0; i < d.n; i++ {
		if d.data[i*d.n+i] < 0 {
			return out, matrixErrorf(opFloydWarshall, ErrNegativeCycle)
		}
	}

	return out, nil
}

func floydWarshallInPlace(d *Dense) {
	n := d.n
	data := d.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Between returns the shortest distance from u to v and whether v is
// reachable from u.
func (d *Distances) Between(u, v string) (float64, bool, error) {
	i, j, err := d.indices(u, v)
	if err != nil {
		return 0, false, err
	}
	w, _ := d.Dist.At(i, j)

	return w, !math.IsInf(w, 1), nil
}

// Eccentricity returns the greatest finite distance from u.
func (d *Distances) Eccentricity(u string) (float64, error) {
	i, ok := d.Index[u]
	if !ok {
		return 0, matrixErrorf("Eccentricity", ErrUnknownVertex)
	}
	var ecc float64
	for _, w := range d.Dist.Row(i) {
		if !math.IsInf(w, 1) && w > ecc {
			ecc = w
		}
	}

	return ecc, nil
}
