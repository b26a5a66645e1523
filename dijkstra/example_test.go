// Package dijkstra_test provides examples demonstrating the animated Dijkstra search.
package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/dijkstra"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// ExampleDijkstra_detour shows the search preferring two cheap hops over one
// expensive edge.
func ExampleDijkstra_detour() {
	// 1) A square A-B-C-D with an expensive diagonal A-C.
	g, _, _ := core.ParseString("A: [B, C, D]\nB: [A, C]\nC: [B, D, A]\nD: [A, C]")
	_ = g.SetWeight("A", "C", 10)
	_ = g.SetWeight("A", "B", 2)
	_ = g.SetWeight("B", "C", 3)

	// 2) A session with default pacing disabled; only the result matters here.
	s, _ := stepper.NewSession(context.Background(), g)

	out, err := dijkstra.Dijkstra(s, dijkstra.Source("A"), dijkstra.Target("C"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Narration)
	// Output: Shortest path: A -> D -> C (Total distance: 2)
}
