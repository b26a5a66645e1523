package prim_kruskal

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Kruskal animates Kruskal's algorithm over every declared edge of the
// session's graph.
//
// Error Conditions:
//   - ErrSessionNil : if s is nil.
//
// Steps:
//  1. Collect all declared edges and stable-sort them by ascending weight.
//  2. Initialize a UnionFind with every vertex in its own set.
//  3. For each edge (u,v) until |V|-1 edges are accepted:
//     a. Highlight it ("Examining").
//     b. If find(u) != find(v), union them and accept the edge.
//     c. Otherwise reject it; it returns to the default stroke after its frame.
//  4. Narrate the total and paint the tree and its vertices.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(s *stepper.Session) (stepper.Outcome, error) {
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	out, err := kruskal(s)
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

func kruskal(s *stepper.Session) (stepper.Outcome, error) {
	g := s.Graph()
	scene := s.Scene()
	vertices := g.Vertices()

	// 1. Sort edges; stable so ties keep declaration order.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	// 2. Disjoint sets.
	uf := NewUnionFind(vertices)

	if err := s.Step("Starting Kruskal's algorithm. Sorted %d edges by weight", len(edges)); err != nil {
		return stepper.Outcome{}, err
	}

	// 3. Scan.
	var (
		tree  []core.Edge
		total float64
	)
	for _, e := range edges {
		if len(tree) == len(vertices)-1 {
			break
		}
		scene.SetEdgeStyle(e.From, e.To, core.ColorAmber, core.WidthActive)
		if err := s.Step("Examining edge %s -> %s (weight: %s)", e.From, e.To, core.FormatWeight(e.Weight)); err != nil {
			return stepper.Outcome{}, err
		}

		if uf.Union(e.From, e.To) {
			tree = append(tree, e)
			total += e.Weight
			scene.SetEdgeStyle(e.From, e.To, core.ColorPurple, core.WidthTree)
			scene.SetNodeColor(e.From, core.ColorBlue)
			scene.SetNodeColor(e.To, core.ColorBlue)
			if err := s.Step("Added edge to MST. Components merged. MST edges: %d", len(tree)); err != nil {
				return stepper.Outcome{}, err
			}
			continue
		}

		scene.SetEdgeStyle(e.From, e.To, core.ColorRed, core.WidthDefault)
		if err := s.Step("Edge creates cycle, rejected. Nodes %s and %s already connected", e.From, e.To); err != nil {
			return stepper.Outcome{}, err
		}
		// a rejected pair may already be a tree edge declared the other way
		if !inTree(tree, e) {
			scene.SetEdgeStyle(e.From, e.To, core.ColorDefault, core.WidthDefault)
		}
	}

	// 4. Final paint.
	s.Note("Kruskal's MST completed! Total weight: %s, Edges: %d", core.FormatWeight(total), len(tree))
	members := mapset.NewThreadUnsafeSet[string]()
	for _, e := range tree {
		scene.SetEdgeStyle(e.From, e.To, core.ColorPurple, core.WidthTree)
		members.Append(e.From, e.To)
	}
	for _, id := range vertices {
		if members.Contains(id) {
			scene.SetNodeColor(id, core.ColorBlue)
		}
	}

	return s.Finish(stepper.Outcome{
		Status:      stepper.StatusMST,
		Tree:        tree,
		TotalWeight: total,
		Visited:     members.Cardinality(),
	}), nil
}

func inTree(tree []core.Edge, e core.Edge) bool {
	return slices.ContainsFunc(tree, func(t core.Edge) bool {
		return (t.From == e.From && t.To == e.To) || (t.From == e.To && t.To == e.From)
	})
}
