// Package prim_kruskal animates the two classic Minimum Spanning Tree
// algorithms over a *core.Graph: Prim's and Kruskal's.
//
// Edge weights are symmetric (one weight per unordered pair), so every
// declared edge is a candidate in either direction. A graph that is not
// connected yields a spanning forest for Kruskal and the tree of the root's
// component for Prim; neither is an error.
//
// Algorithms Provided
//
//   - Prim(s *stepper.Session, root string) (stepper.Outcome, error)
//
//   - Strategy: grow one tree from root. Candidate edges from the tree to
//     unvisited neighbors are kept in a list that suppresses a second entry
//     for the same unordered pair. Each round stable-sorts the list by
//     weight and takes the head; a head whose far end was reached in the
//     meantime is discarded without a step.
//
//   - Stops when every vertex is in the tree or no candidate remains.
//
//   - Kruskal(s *stepper.Session) (stepper.Outcome, error)
//
//   - Strategy: stable-sort every declared edge by weight, then examine
//     them in order. Each edge gets an "Examining" step and then either an
//     accept step (the two components merge in the UnionFind) or a reject
//     step when it would close a cycle.
//
//   - Stops after |V|−1 accepted edges.
//
// Determinism
//
//	Both sorts are stable over declaration order, so ties always break the
//	same way and Prim and Kruskal agree on total weight for connected graphs.
package prim_kruskal
