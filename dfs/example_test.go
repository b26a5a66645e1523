package dfs_test

import (
	"context"
	"fmt"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/dfs"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// ExampleDFS narrates a depth-first search of the "simple" sample from A to F.
// D is a dead end, so the search backs up to B before reaching F through E.
func ExampleDFS() {
	g, _, _ := core.ParseString("A: [B, C]\nB: [A, D, E]\nC: [A, F]\nD: [B]\nE: [B, F]\nF: [C, E]")
	s, _ := stepper.NewSession(context.Background(), g,
		stepper.WithNarrator(stepper.NarratorFunc(func(msg string) { fmt.Println(msg) })),
	)

	out, err := dfs.DFS(s, "A", dfs.WithTarget("F"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Status, out.Visited)
	// Output:
	// Step 1: Starting DFS from node A
	// Step 2: Visiting node A
	// Step 3: Exploring edge A -> B
	// Step 4: Visiting node B
	// Step 5: Exploring edge B -> D
	// Step 6: Visiting node D
	// Step 7: Exploring edge B -> E
	// Step 8: Visiting node E
	// Step 9: Exploring edge E -> F
	// Step 10: Visiting node F
	// Step 11: Found target node F! Reconstructing path...
	// Path found: A -> B -> E -> F (Length: 3)
	// path-found 5
}
