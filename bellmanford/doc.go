// Package bellmanford animates the Bellman-Ford single-source shortest-path
// algorithm, which tolerates negative edge weights and detects negative
// cycles.
//
// The run relaxes every declared edge, in declaration order, for up to V−1
// passes. Each pass opens with its own step, and each edge whose tail has a
// finite distance is highlighted for one step and then returned to the
// default style. A pass that changes nothing ends the loop early.
//
// A final scan over the edges looks for any edge that could still be
// relaxed. If one exists the graph holds a negative cycle reachable from the
// source: the run stops with StatusNegativeCycle and no path is reported.
// Otherwise the path to the target is traced when its distance is finite.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford
