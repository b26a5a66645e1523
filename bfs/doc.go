// Package bfs animates breadth-first search over a core.Graph, one step per
// dequeue and per enqueue.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - A vertex is marked visited when it is dequeued. A neighbor is enqueued
//     only when it is neither visited nor already waiting in the queue.
//   - Colours: the start is green, a dequeued vertex blue, an enqueued vertex
//     amber, and the edge it was discovered over orange at width 3.
//   - With WithTarget the run stops the moment the target is dequeued and
//     traces the fewest-hop path to it.
//
// Outcomes
//
//	StatusPathFound  target reached, Path and Cost (edge count) set
//	StatusNoPath     target given but not reachable from the start
//	StatusCompleted  no target; Visited counts the reachable vertices
//	StatusCancelled  the session's context was cancelled mid-run
//
// Determinism
//
//	Neighbors are enqueued in the order the input declared them, so the
//	visit sequence and the narration are fully reproducible.
package bfs
