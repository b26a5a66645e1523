// Package astar animates A* search between a source and a goal.
//
// The open set is kept in insertion order. Each round selects the open
// vertex with the lowest f = g + h, the first one in that order on ties, and
// the search succeeds the moment the goal is selected. The selected vertex
// moves to the closed set; each neighbor not yet closed joins the open set on
// first sight and is re-scored when the route through the current vertex is
// cheaper.
//
// The default heuristic is LayoutHeuristic, the straight-line distance on
// the canvas divided by HeuristicDivisor. Supply WithHeuristic to search
// with an admissible estimate instead; a heuristic returning 0 reduces A*
// to Dijkstra's algorithm.
package astar
