package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Prim animates Prim's algorithm growing a spanning tree from root.
//
// Error Conditions:
//   - ErrSessionNil     : if s is nil.
//   - ErrEmptyRoot      : if the provided root string is empty.
//   - ErrVertexNotFound : if the root vertex does not exist in the graph.
//
// Steps:
//  1. Mark root visited and seed the candidate list with its edges.
//  2. While candidates remain and some vertex is still outside the tree:
//     a. Stable-sort candidates by weight and take the first.
//     b. If its far end is already visited, discard it silently.
//     c. Otherwise add it to the tree (one step), then add the new
//     vertex's edges to the candidate list (one step).
//  3. Narrate the total and paint every tree edge.
//
// Complexity: O(E² log E) in the worst case because the list is re-sorted
// every round. Memory: O(V + E).
func Prim(s *stepper.Session, root string) (stepper.Outcome, error) {
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	if root == "" {
		return stepper.Outcome{}, ErrEmptyRoot
	}
	g := s.Graph()
	if !g.HasVertex(root) {
		return stepper.Outcome{}, errors.Wrapf(ErrVertexNotFound, "prim_kruskal: %q", root)
	}

	p := &primRunner{
		s:       s,
		g:       g,
		scene:   s.Scene(),
		visited: mapset.NewThreadUnsafeSet[string](),
	}
	out, err := p.run(root)
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

type primRunner struct {
	s       *stepper.Session
	g       *core.Graph
	scene   *core.Scene
	visited mapset.Set[string]
	queue   []core.Edge
	tree    []core.Edge
	total   float64
}

func (p *primRunner) run(root string) (stepper.Outcome, error) {
	p.visited.Add(root)
	p.scene.SetNodeColor(root, core.ColorGreen)
	if err := p.s.Step("Starting Prim's algorithm from node %s", root); err != nil {
		return stepper.Outcome{}, err
	}
	p.addEdges(root)

	n := p.g.VertexCount()
	for len(p.queue) > 0 && p.visited.Cardinality() < n {
		slices.SortStableFunc(p.queue, func(a, b core.Edge) int { return cmp.Compare(a.Weight, b.Weight) })
		e := p.queue[0]
		p.queue = p.queue[1:]
		if p.visited.Contains(e.To) {
			continue
		}

		p.visited.Add(e.To)
		p.tree = append(p.tree, e)
		p.total += e.Weight
		p.scene.SetNodeColor(e.To, core.ColorBlue)
		p.scene.SetEdgeStyle(e.From, e.To, core.ColorPurple, core.WidthTree)
		if err := p.s.Step("Added edge %s -> %s (weight: %s) to MST", e.From, e.To, core.FormatWeight(e.Weight)); err != nil {
			return stepper.Outcome{}, err
		}

		p.addEdges(e.To)
		if err := p.s.Step("Updated edge queue from node %s", e.To); err != nil {
			return stepper.Outcome{}, err
		}
	}

	p.s.Note("Prim's MST completed! Total weight: %s, Edges: %d", core.FormatWeight(p.total), len(p.tree))
	for _, e := range p.tree {
		p.scene.SetEdgeStyle(e.From, e.To, core.ColorPurple, core.WidthTree)
	}

	return p.s.Finish(stepper.Outcome{
		Status:      stepper.StatusMST,
		Tree:        p.tree,
		TotalWeight: p.total,
		Visited:     p.visited.Cardinality(),
	}), nil
}

// addEdges appends an edge from id to each unvisited neighbor, unless the
// unordered pair is already waiting in the queue.
func (p *primRunner) addEdges(id string) {
	for _, nbr := range p.g.Neighbors(id) {
		if p.visited.Contains(nbr) {
			continue
		}
		queued := slices.ContainsFunc(p.queue, func(e core.Edge) bool {
			return (e.From == id && e.To == nbr) || (e.From == nbr && e.To == id)
		})
		if !queued {
			p.queue = append(p.queue, core.Edge{From: id, To: nbr, Weight: p.g.Weight(id, nbr)})
		}
	}
}
