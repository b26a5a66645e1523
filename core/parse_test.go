package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

func TestParse_Basic(t *testing.T) {
	g, rep, err := core.ParseString("A: [B, C]\nB: [A]\nC: [A]")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, rep.Declarations)
	assert.Empty(t, rep.Skipped)
}

func TestParse_ImplicitVertices(t *testing.T) {
	g, _, err := core.ParseString("X: [Y, Z]")
	require.NoError(t, err)

	assert.True(t, g.HasVertex("Y"))
	assert.True(t, g.HasVertex("Z"))
	assert.Empty(t, g.Neighbors("Y"))
	assert.Equal(t, []string{"X"}, g.Declared())
}

func TestParse_BracketsOptionalAndWhitespace(t *testing.T) {
	g, _, err := core.ParseString("   A :  B ,C,, \n\n  B: [ A ]  ")
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A"}, g.Neighbors("B"))
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	input := strings.Join([]string{
		"A: [B]",
		"just some text",
		": [C]",
		"D:",
		"E: []",
	}, "\n")
	g, rep, err := core.ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, rep.Skipped)
	assert.Equal(t, 2, rep.Declarations)
	assert.False(t, g.HasVertex("C"))
	assert.False(t, g.HasVertex("D"))
	assert.True(t, g.HasVertex("E"))
	assert.Empty(t, g.Neighbors("E"))
}

func TestParse_RedeclarationReplacesButKeepsPosition(t *testing.T) {
	g, _, err := core.ParseString("A: [B]\nC: [A]\nA: [C]")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, g.Declared())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 1},
	}, g.Edges())
	// B stays a vertex even though no declaration references it anymore.
	assert.True(t, g.HasVertex("B"))
}

func TestParse_EmptyInput(t *testing.T) {
	_, _, err := core.ParseString(" \n\t ")
	assert.True(t, errors.Is(err, core.ErrEmptyInput))
}

func TestFormatWeight(t *testing.T) {
	cases := map[float64]string{
		3:            "3",
		2.5:          "2.5",
		-1:           "-1",
		math.Inf(1):  "Infinity",
		math.Inf(-1): "-Infinity",
	}
	for in, want := range cases {
		if got := core.FormatWeight(in); got != want {
			t.Errorf("FormatWeight(%v) = %q; want %q", in, got, want)
		}
	}
}
