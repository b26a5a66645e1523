package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// DefaultEdgeWeight is the weight every edge gets without a custom WeightFn.
// It equals core.DefaultWeight, so default-weighted edges carry no explicit
// entry in the graph's weight table.
const DefaultEdgeWeight = core.DefaultWeight

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Negative
// values are allowed; Bellman-Ford fixtures need them.
// Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("ConstantWeightFn: value is NaN")
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// With a nil rng it yields DefaultEdgeWeight.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Integer weights keep narration readable ("distance: 7" rather than
// "distance: 6.93"). With a nil rng it yields DefaultEdgeWeight.
// Panics if max < min.
func IntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
