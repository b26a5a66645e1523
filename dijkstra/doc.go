// Package dijkstra animates Dijkstra's shortest-path algorithm between a
// source and a target on graphs with non-negative edge weights.
//
// Overview:
//
//   - Every vertex starts at distance +∞ except the source at 0.
//   - Each round selects the unsettled vertex with the smallest finite
//     distance, scanning vertices in graph insertion order. Comparison is
//     strict, so the first minimum in that order wins ties.
//   - The selected vertex is settled (orange) and each of its declared
//     neighbors that is still unsettled is relaxed (amber edge) in its own
//     step, narrating either the improvement or "No improvement".
//   - The search ends the instant the target is selected, then traces the
//     shortest path. If no finite candidate remains first, the target is
//     unreachable.
//
// Performance and complexity:
//
//   - Time:  O(V² + E). The linear selection scan fixes the
//     tie-breaking order the narration depends on.
//   - Space: O(V) for the distance and predecessor maps.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrSessionNil, ErrEmptyTarget and ErrVertexNotFound
//     reject malformed requests before the first step.
//   - ErrNegativeWeight is returned by an O(E) pre-scan, also before the
//     first step. Use package bellmanford for graphs with negative weights.
package dijkstra
