// Package core defines the graph model shared by every animated algorithm:
// the adjacency-list Graph parsed from text, its circular Layout, and the
// Scene that holds presentation state.
//
// Input format:
//
//	A: [B, C]
//	B: [A]
//	C: [A]
//
// One declaration per line, brackets optional, blank or malformed lines
// skipped. Neighbors that are never declared become vertices with no
// outgoing edges.
//
// Direction and weights:
//
//   - Traversals follow edges in the direction they were written.
//   - Weights and edge styles belong to the unordered pair {u, v}; the text
//     format has no weights, so every edge starts at DefaultWeight (1) and
//     SetWeight is the only way to change that.
//
// Determinism:
//
//	Vertices() is first-seen order and Edges() is declaration order. Every
//	tie-break in the algorithms is defined against these two orders.
//
// Scene vs Graph:
//
//	Graph is the algorithmic model. Scene holds node fills and edge strokes
//	and is owned by the driver; algorithms write to it, renderers read it,
//	and nothing reads it to make a decision.
package core
