// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, declaration order,
// idempotence and weights.
package builder_test

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/builder"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// undirected counts the unordered pairs among g's declared edges.
func undirected(g *core.Graph) int {
	seen := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		k := [2]string{e.From, e.To}
		if e.To < e.From {
			k = [2]string{e.To, e.From}
		}
		seen[k] = true
	}

	return len(seen)
}

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int // vertices
		wantE       int // unordered edges
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := g.Neighbors("1"); !slices.Equal(got, []string{"0", "2"}) {
					t.Errorf("Path: Neighbors(1) = %v, want [0 2]", got)
				}
				if got := g.Neighbors("3"); !slices.Equal(got, []string{"2"}) {
					t.Errorf("Path: Neighbors(3) = %v, want [2]", got)
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := g.Neighbors("0"); !slices.Equal(got, []string{"1", "4"}) {
					t.Errorf("Cycle: Neighbors(0) = %v, want [1 4]", got)
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := g.Vertices()[0]; got != "Center" {
					t.Errorf("Star: first vertex = %q, want Center", got)
				}
				if got := g.Neighbors("Center"); !slices.Equal(got, []string{"1", "2", "3"}) {
					t.Errorf("Star: Neighbors(Center) = %v", got)
				}
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // 4 rim + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("0", "1") {
					t.Error("Wheel: missing rim edge 0-1")
				}
				if !g.HasEdge("Center", "2") {
					t.Error("Wheel: missing spoke Center-2")
				}
				if got := g.Neighbors("0"); !slices.Equal(got, []string{"1", "3", "Center"}) {
					t.Errorf("Wheel: Neighbors(0) = %v", got)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					if n := len(g.Neighbors(id)); n != 3 {
						t.Errorf("Complete: deg(%s) = %d, want 3", id, n)
					}
				}
				if got := g.Neighbors("2"); !slices.Equal(got, []string{"0", "1", "3"}) {
					t.Errorf("Complete: Neighbors(2) = %v", got)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2*(3-1) + (2-1)*3
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("0", "1") || !g.HasEdge("0", "3") {
					t.Error("Grid: missing right or down edge of cell 0")
				}
				if g.HasEdge("2", "3") {
					t.Error("Grid: row wrap-around edge 2-3")
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices = %d, want %d", got, tc.wantV)
			}
			if got := undirected(g); got != tc.wantE {
				t.Errorf("undirected edges = %d, want %d", got, tc.wantE)
			}
			// both directions are declared
			if got := g.EdgeCount(); got != 2*tc.wantE {
				t.Errorf("declared edges = %d, want %d", got, 2*tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_TooFew checks every constructor's minimum size.
func TestBuilders_TooFew(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":     builder.Path(1),
		"Cycle(2)":    builder.Cycle(2),
		"Star(1)":     builder.Star(1),
		"Wheel(3)":    builder.Wheel(3),
		"Complete(0)": builder.Complete(0),
		"Grid(0x3)":   builder.Grid(0, 3),
		"Grid(3x0)":   builder.Grid(3, 0),
	} {
		_, err := builder.BuildGraph(nil, ctor)
		if !errors.Is(err, builder.ErrTooFewVertices) {
			t.Errorf("%s: err = %v, want ErrTooFewVertices", name, err)
		}
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}

// TestBuilders_MatchParsedText checks a built graph against the adjacency
// text that describes it.
func TestBuilders_MatchParsedText(t *testing.T) {
	built, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(4))
	require.NoError(t, err)

	parsed, _, err := core.ParseString("A: [B, D]\nB: [A, C]\nC: [B, D]\nD: [C, A]")
	require.NoError(t, err)

	assert.ElementsMatch(t, parsed.Vertices(), built.Vertices())
	assert.Equal(t, parsed.Declared(), built.Declared())
	assert.Equal(t, parsed.Edges(), built.Edges())
}

func TestBuilders_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestBuilders_Composition(t *testing.T) {
	// a path glued onto a cycle through the shared vertices 0..2
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Path(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, []string{"1", "3"}, g.Neighbors("0"))
	assert.Equal(t, []string{"4"}, g.Neighbors("5"))
}

func TestBuilders_Weights(t *testing.T) {
	t.Run("constant", func(t *testing.T) {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithWeightFn(builder.ConstantWeightFn(-2)),
		}, builder.Path(3))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.Equal(t, -2.0, e.Weight, "%s->%s", e.From, e.To)
		}
		assert.True(t, g.HasNegativeWeight())
	})

	t.Run("seeded ints are reproducible", func(t *testing.T) {
		opts := []builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithWeightFn(builder.IntWeightFn(1, 9)),
		}
		a, err := builder.BuildGraph(opts, builder.Complete(5))
		require.NoError(t, err)
		b, err := builder.BuildGraph(opts, builder.Complete(5))
		require.NoError(t, err)
		assert.Equal(t, a.Edges(), b.Edges())
		for _, e := range a.Edges() {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 9.0)
			assert.Equal(t, a.Weight(e.From, e.To), a.Weight(e.To, e.From))
		}
	})

	t.Run("default leaves the table empty", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, builder.Star(3))
		require.NoError(t, err)
		assert.False(t, g.HasNegativeWeight())
		assert.Equal(t, core.DefaultWeight, g.Weight("Center", "1"))
	})
}
