package render

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// uniqueEdges returns the declared edges with reverse declarations of the same
// pair dropped; the first declaration of a pair wins.
func uniqueEdges(g *core.Graph) []core.Edge {
	seen := mapset.NewThreadUnsafeSet[[2]string]()
	edges := g.Edges()
	out := edges[:0]
	for _, e := range edges {
		k := [2]string{e.From, e.To}
		if e.To < e.From {
			k = [2]string{e.To, e.From}
		}
		if seen.Add(k) {
			out = append(out, e)
		}
	}

	return out
}
