package prim_kruskal_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/prim_kruskal"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// buildTriangle constructs A-B (1), B-C (2), A-C (3).
// Its MST consists of A-B and B-C with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := core.ParseString("A: [B, C]\nB: [C]")
	require.NoError(t, err)
	require.NoError(t, g.SetWeight("A", "B", 1))
	require.NoError(t, g.SetWeight("B", "C", 2))
	require.NoError(t, g.SetWeight("A", "C", 3))

	return g
}

// buildWeightedSample loads the "weighted" sample and gives every edge a
// reproducible random weight in [1..20].
func buildWeightedSample(t *testing.T, seed int64) *core.Graph {
	t.Helper()
	g, _, err := core.ParseString("1: [2, 3, 4]\n2: [1, 5]\n3: [1, 6]\n4: [1, 7]\n5: [2, 8]\n6: [3, 8]\n7: [4, 8]\n8: [5, 6, 7]")
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for _, e := range g.Edges() {
		require.NoError(t, g.SetWeight(e.From, e.To, float64(1+r.Intn(20))))
	}

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

func TestUnionFind(t *testing.T) {
	uf := prim_kruskal.NewUnionFind([]string{"A", "B", "C", "D"})
	assert.False(t, uf.Connected("A", "B"))
	assert.True(t, uf.Union("A", "B"))
	assert.True(t, uf.Union("C", "D"))
	assert.False(t, uf.Union("B", "A"), "already joined")
	assert.True(t, uf.Union("B", "D"))
	// root(D) went under root(B), which is A
	assert.Equal(t, "A", uf.Find("D"))
	assert.True(t, uf.Connected("C", "A"))
	assert.Equal(t, "Z", uf.Find("Z"), "unknown ids become singletons")
}

func TestKruskal_Triangle(t *testing.T) {
	var log []string
	s := newSession(t, buildTriangle(t), &log)

	out, err := prim_kruskal.Kruskal(s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Step 1: Starting Kruskal's algorithm. Sorted 3 edges by weight",
		"Step 2: Examining edge A -> B (weight: 1)",
		"Step 3: Added edge to MST. Components merged. MST edges: 1",
		"Step 4: Examining edge B -> C (weight: 2)",
		"Step 5: Added edge to MST. Components merged. MST edges: 2",
		"Step 6: Kruskal's MST completed! Total weight: 3, Edges: 2",
	}, log)
	assert.Equal(t, stepper.StatusMST, out.Status)
	assert.Equal(t, 3.0, out.TotalWeight)
	assert.Len(t, out.Tree, 2)
	assert.Equal(t, core.DefaultEdgeStyle, s.Scene().EdgeStyle("A", "C"))
	assert.Equal(t, core.ColorBlue, s.Scene().NodeColor("C"))
}

func TestKruskal_RejectsCycle(t *testing.T) {
	var log []string
	s := newSession(t, mustParse(t, "A: [B]\nB: [A, C]"), &log)

	out, err := prim_kruskal.Kruskal(s)
	require.NoError(t, err)
	assert.Contains(t, log, "Step 5: Edge creates cycle, rejected. Nodes B and A already connected")
	assert.Len(t, out.Tree, 2)
	// the reverse declaration of a tree edge keeps the tree stroke
	assert.Equal(t, core.EdgeStyle{Color: core.ColorPurple, Width: core.WidthTree}, s.Scene().EdgeStyle("A", "B"))
}

func TestKruskal_Forest(t *testing.T) {
	var log []string
	s := newSession(t, mustParse(t, "A: [B]\nC: [D]"), &log)

	out, err := prim_kruskal.Kruskal(s)
	require.NoError(t, err)
	assert.Len(t, out.Tree, 2)
	assert.Equal(t, 4, out.Visited)
}

func TestKruskal_SpanningTreeHasNoCycle(t *testing.T) {
	var log []string
	g := buildWeightedSample(t, 7)
	s := newSession(t, g, &log)

	out, err := prim_kruskal.Kruskal(s)
	require.NoError(t, err)
	require.Len(t, out.Tree, g.VertexCount()-1)
	uf := prim_kruskal.NewUnionFind(g.Vertices())
	for _, e := range out.Tree {
		assert.True(t, uf.Union(e.From, e.To), "edge %s-%s closes a cycle", e.From, e.To)
	}
}

func TestPrim_Errors(t *testing.T) {
	var log []string
	s := newSession(t, buildTriangle(t), &log)

	_, err := prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrSessionNil)
	_, err = prim_kruskal.Prim(s, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
	_, err = prim_kruskal.Prim(s, "Q")
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexNotFound)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrSessionNil)
}

func TestPrim_Triangle(t *testing.T) {
	var log []string
	s := newSession(t, buildTriangle(t), &log)

	out, err := prim_kruskal.Prim(s, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Step 1: Starting Prim's algorithm from node A",
		"Step 2: Added edge A -> B (weight: 1) to MST",
		"Step 3: Updated edge queue from node B",
		"Step 4: Added edge B -> C (weight: 2) to MST",
		"Step 5: Updated edge queue from node C",
		"Step 6: Prim's MST completed! Total weight: 3, Edges: 2",
	}, log)
	assert.Equal(t, 3.0, out.TotalWeight)
	assert.Equal(t, core.ColorGreen, s.Scene().NodeColor("A"))
}

func TestPrim_StopsAtComponent(t *testing.T) {
	var log []string
	s := newSession(t, mustParse(t, "A: [B]\nB: [A]\nC: [D]\nD: [C]"), &log)

	out, err := prim_kruskal.Prim(s, "A")
	require.NoError(t, err)
	assert.Len(t, out.Tree, 1)
	assert.Equal(t, 2, out.Visited)
}

// TestPrimMatchesKruskal compares total weights on several random weightings.
func TestPrimMatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		var log []string
		g := buildWeightedSample(t, seed)

		k, err := prim_kruskal.Kruskal(newSession(t, g, &log))
		require.NoError(t, err)
		p, err := prim_kruskal.Prim(newSession(t, g, &log), "1")
		require.NoError(t, err)

		assert.Equal(t, k.TotalWeight, p.TotalWeight, "seed %d", seed)
		assert.Len(t, p.Tree, g.VertexCount()-1)
	}
}

func TestKruskal_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := stepper.NewSession(ctx, buildTriangle(t))
	require.NoError(t, err)

	out, err := prim_kruskal.Kruskal(s)
	require.NoError(t, err)
	assert.Equal(t, stepper.StatusCancelled, out.Status)
}

func mustParse(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, _, err := core.ParseString(text)
	require.NoError(t, err)

	return g
}
