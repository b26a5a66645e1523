// Package dfs animates depth-first search over a core.Graph.
//
// What
//
//   - Enter a vertex: mark it visited, colour it blue, publish a step.
//   - Then walk its neighbors in declaration order. Each neighbor still
//     unvisited at the moment it is reached is explored: its edge turns
//     orange, the neighbor amber, and the traversal descends into it.
//   - With WithTarget the whole traversal unwinds as soon as the target is
//     entered and the discovery path to it is traced.
//
// How
//
//	The descent is driven by an explicit stack of frames, one per vertex on
//	the current path, each remembering the index of its next neighbor. This
//	produces exactly the step sequence of the recursive formulation without
//	bounding the search depth by the goroutine stack.
//
// Outcomes
//
//	StatusPathFound, StatusNoPath, StatusCompleted and StatusCancelled, as in
//	package bfs. A DFS path is the discovery path, not necessarily the
//	shortest one.
package dfs
