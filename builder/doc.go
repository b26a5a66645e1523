// Package builder assembles fixture graphs for the visualizer: small regular
// topologies built from functional options, and the three named samples the
// input box ships with.
//
// Every constructor emits declarations through core.Graph.Declare, one per
// vertex, listing both endpoints of every undirected edge. A built graph is
// therefore indistinguishable from one parsed from adjacency text, and every
// algorithm sees the same neighbor order it would see for the written form.
//
// The package offers:
//
//   - Configuration primitives:
//     BuilderOption mutates builderConfig (ID scheme, RNG, weight function).
//   - Vertex-ID schemes (IDFn):
//     DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"), ExcelColumnIDFn ("A"…"Z","AA",…).
//   - Edge-weight distributions (WeightFn):
//     DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn.
//   - Constructors:
//     Path, Cycle, Star, Wheel, Complete, Grid.
//   - Named samples:
//     Sample("simple"|"weighted"|"tree") and SampleNames.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order give the same
//     graph, including vertex order, neighbor order and weights.
//   - Idempotence: re-running a constructor on g never duplicates a neighbor.
//   - Option constructors panic on nil or NaN inputs; constructors never panic
//     and report sentinel errors wrapped with their method name.
package builder
