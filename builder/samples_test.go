package builder_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/builder"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name          string
		nodes, edges  int
		first, second string
	}{
		{builder.SampleSimple, 6, 12, "A", "B"},
		{builder.SampleWeighted, 8, 18, "1", "2"},
		{builder.SampleTree, 7, 12, "root", "A"},
	}
	require.Equal(t, []string{"simple", "weighted", "tree"}, builder.SampleNames())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := builder.Sample(tc.name)
			require.NoError(t, err)
			g, rep, err := core.ParseString(text)
			require.NoError(t, err)
			assert.Empty(t, rep.Skipped)
			assert.Equal(t, tc.nodes, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.first, g.Vertices()[0])
			assert.Equal(t, tc.second, g.Vertices()[1])
		})
	}
}

func TestSample_Unknown(t *testing.T) {
	_, err := builder.Sample("lattice")
	assert.True(t, errors.Is(err, builder.ErrUnknownSample))
}

func TestSampleNames_Copy(t *testing.T) {
	names := builder.SampleNames()
	names[0] = "changed"
	assert.Equal(t, "simple", builder.SampleNames()[0])
}
