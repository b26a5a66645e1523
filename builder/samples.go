package builder

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Names of the bundled samples.
const (
	SampleSimple   = "simple"
	SampleWeighted = "weighted"
	SampleTree     = "tree"
)

var samples = map[string]string{
	SampleSimple: `A: [B, C]
B: [A, D, E]
C: [A, F]
D: [B]
E: [B, F]
F: [C, E]`,
	SampleWeighted: `1: [2, 3, 4]
2: [1, 5]
3: [1, 6]
4: [1, 7]
5: [2, 8]
6: [3, 8]
7: [4, 8]
8: [5, 6, 7]`,
	SampleTree: `root: [A, B]
A: [root, C, D]
B: [root, E, F]
C: [A]
D: [A]
E: [B]
F: [B]`,
}

// Sample returns the adjacency text of a bundled sample graph.
func Sample(name string) (string, error) {
	text, ok := samples[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSample, "builder: %q", name)
	}

	return text, nil
}

// SampleNames lists the bundled samples in the order the picker shows them.
func SampleNames() []string {
	return slices.Clone(sampleOrder)
}

var sampleOrder = []string{SampleSimple, SampleWeighted, SampleTree}
