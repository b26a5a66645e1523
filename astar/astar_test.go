package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/astar"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

func zero(*core.Graph, string, string) float64 { return 0 }

func laidOut(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, _, err := core.ParseString(text)
	require.NoError(t, err)
	g.ApplyLayout(core.DefaultLayout())

	return g
}

func newSession(t *testing.T, g *core.Graph, log *[]string) *stepper.Session {
	t.Helper()
	s, err := stepper.NewSession(context.Background(), g,
		stepper.WithNarrator(stepper.NarratorFunc(func(msg string) { *log = append(*log, msg) })),
	)
	require.NoError(t, err)

	return s
}

func TestAStar_RequestErrors(t *testing.T) {
	var log []string
	g := laidOut(t, "A: [B]")
	s := newSession(t, g, &log)

	_, err := astar.AStar(s)
	assert.ErrorIs(t, err, astar.ErrEmptySource)
	_, err = astar.AStar(nil, astar.Source("A"))
	assert.ErrorIs(t, err, astar.ErrSessionNil)
	_, err = astar.AStar(s, astar.Source("A"))
	assert.ErrorIs(t, err, astar.ErrEmptyTarget)
	_, err = astar.AStar(s, astar.Source("A"), astar.Target("nope"))
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)

	require.NoError(t, g.SetWeight("A", "B", -2))
	_, err = astar.AStar(s, astar.Source("A"), astar.Target("B"))
	assert.ErrorIs(t, err, astar.ErrNegativeWeight)
	assert.Empty(t, log)
}

func TestLayoutHeuristic(t *testing.T) {
	g := laidOut(t, "A: [B, C, D]")
	// A sits at (620, 300) and C at (180, 300) on the default canvas.
	assert.InDelta(t, 8.8, astar.LayoutHeuristic(g, "A", "C"), 1e-9)
	assert.Zero(t, astar.LayoutHeuristic(g, "B", "B"))
}

func TestAStar_ZeroHeuristicNarration(t *testing.T) {
	var log []string
	g := laidOut(t, "A: [B, C]\nB: [C]")
	require.NoError(t, g.SetWeight("A", "C", 5))
	require.NoError(t, g.SetWeight("B", "C", 2))
	s := newSession(t, g, &log)

	out, err := astar.AStar(s, astar.Source("A"), astar.Target("C"), astar.WithHeuristic(zero))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Step 1: A* initialized. Start: A, Goal: C",
		"Step 2: Processing A (f=0.0, g=0)",
		"Step 3: Updated B - g=1, f=1.0",
		"Step 4: Updated C - g=5, f=5.0",
		"Step 5: Processing B (f=1.0, g=1)",
		"Step 6: Updated C - g=3, f=3.0",
		"Step 7: Goal reached! Reconstructing optimal path...",
		"Shortest path: A -> B -> C (Total distance: 3)",
	}, log)
	assert.Equal(t, stepper.StatusPathFound, out.Status)
	assert.Equal(t, 2, out.Visited)
}

func TestAStar_NoImprovement(t *testing.T) {
	var log []string
	g := laidOut(t, "A: [B, C]\nB: [C]\nC: [D]")
	require.NoError(t, g.SetWeight("B", "C", 3))
	s := newSession(t, g, &log)

	out, err := astar.AStar(s, astar.Source("A"), astar.Target("D"), astar.WithHeuristic(zero))
	require.NoError(t, err)
	assert.Contains(t, log, "Step 6: No improvement for C")
	assert.Equal(t, []string{"A", "C", "D"}, out.Path)
}

func TestAStar_LayoutHeuristicFindsGoal(t *testing.T) {
	var log []string
	g := laidOut(t, "A: [B, C]\nB: [A, D, E]\nC: [A, F]\nD: [B]\nE: [B, F]\nF: [C, E]")
	s := newSession(t, g, &log)

	out, err := astar.AStar(s, astar.Source("A"), astar.Target("F"))
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusPathFound, out.Status)
	assert.Equal(t, "A", out.Path[0])
	assert.Equal(t, "F", out.Path[len(out.Path)-1])
}

func TestAStar_Unreachable(t *testing.T) {
	var log []string
	g := laidOut(t, "A: [B]\nC: [A]")
	s := newSession(t, g, &log)

	out, err := astar.AStar(s, astar.Source("A"), astar.Target("C"))
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusNoPath, out.Status)
	assert.Equal(t, "A* completed. No path found to C.", out.Narration)
	// the goal keeps its red marker when it is never reached
	assert.Equal(t, core.ColorRed, s.Scene().NodeColor("C"))
	assert.Equal(t, core.ColorOrange, s.Scene().NodeColor("A"))
}
