// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolved by newBuilderConfig.
//
// Policy:
//   • Option constructors validate eagerly and panic on nil inputs.
//   • Options are applied in order; the last one touching a field wins.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index -> vertex ID function.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbolIDs names vertices "A", "B", … "Z". Constructors with more than 26
// vertices should use WithIDScheme(ExcelColumnIDFn) instead.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithSeed installs a seeded RNG, making stochastic weight functions
// reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge-weight generator.
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
