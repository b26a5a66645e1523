// Package graphstep animates classic graph algorithms one step at a time.
//
// A graph is given as adjacency-list text, one declaration per line:
//
//	A: [B, C]
//	B: [A, D]
//	C: [A, D]
//	D: [B, C]
//
// which describes a square:
//
//	    A───B
//	    │   │
//	    C───D
//
// Every algorithm colours vertices and edges on a shared scene, narrates
// what it just did, draws a frame and then waits for the pace controller
// before its next step. The run can be paused, resumed, sped up, slowed
// down or cancelled from another goroutine at any time.
//
// Packages:
//
//	core/           Graph, adjacency-text parser, circular layout, Scene
//	stepper/        Session, pace Controller, Outcome, path reconstruction
//	bfs/ dfs/       traversals with an optional target
//	dijkstra/       shortest path over non-negative weights
//	bellmanford/    shortest path with negative-cycle detection
//	astar/          heuristic shortest path over layout distance
//	prim_kruskal/   minimum spanning trees
//	builder/        generated topologies (path, cycle, star, wheel, complete, grid) and samples
//	matrix/         adjacency matrix and Floyd-Warshall distances
//	render/         text, DOT and recording renderers, colour legends
//	visualizer/     the driver: load, start, pause, speed, reset
//	cmd/graphstep   the command-line front end
//
// Quick start:
//
//	go run ./cmd/graphstep run bfs --sample simple --start A --end F
package graphstep
