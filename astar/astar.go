package astar

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// searcher holds the mutable state of one A* run.
type searcher struct {
	s      *stepper.Session
	g      *core.Graph
	scene  *core.Scene
	opts   Options
	open   []string // insertion order; selection scans it
	inOpen mapset.Set[string]
	closed mapset.Set[string]
	gScore map[string]float64
	fScore map[string]float64
	prev   map[string]string
}

// AStar animates an A* search from Options.Source to Options.Target.
//
// Validation mirrors package dijkstra: ErrEmptySource, ErrSessionNil,
// ErrEmptyTarget, ErrVertexNotFound and ErrNegativeWeight are returned
// before the first step.
func AStar(s *stepper.Session, opts ...Option) (stepper.Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == "" {
		return stepper.Outcome{}, ErrEmptySource
	}
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	if o.Target == "" {
		return stepper.Outcome{}, ErrEmptyTarget
	}
	g := s.Graph()
	for _, id := range []string{o.Source, o.Target} {
		if !g.HasVertex(id) {
			return stepper.Outcome{}, errors.Wrapf(ErrVertexNotFound, "astar: %q", id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return stepper.Outcome{}, errors.Wrapf(ErrNegativeWeight, "astar: edge %s->%s weight=%s",
				e.From, e.To, core.FormatWeight(e.Weight))
		}
	}

	r := &searcher{
		s:      s,
		g:      g,
		scene:  s.Scene(),
		opts:   o,
		inOpen: mapset.NewThreadUnsafeSet[string](),
		closed: mapset.NewThreadUnsafeSet[string](),
		gScore: make(map[string]float64, g.VertexCount()),
		fScore: make(map[string]float64, g.VertexCount()),
		prev:   make(map[string]string, g.VertexCount()),
	}
	out, err := r.search()
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

func (r *searcher) score(m map[string]float64, id string) float64 {
	if v, ok := m[id]; ok {
		return v
	}

	return math.Inf(1)
}

func (r *searcher) search() (stepper.Outcome, error) {
	src, goal := r.opts.Source, r.opts.Target
	r.gScore[src] = 0
	r.fScore[src] = r.opts.Heuristic(r.g, src, goal)
	r.push(src)

	r.scene.SetNodeColor(src, core.ColorGreen)
	r.scene.SetNodeColor(goal, core.ColorRed)
	if err := r.s.Step("A* initialized. Start: %s, Goal: %s", src, goal); err != nil {
		return stepper.Outcome{}, err
	}

	for len(r.open) > 0 {
		cur := r.lowestF()
		if cur == goal {
			r.s.Note("Goal reached! Reconstructing optimal path...")
			out, err := r.s.TracePath(r.prev, src, goal, stepper.Distance)
			out.Visited = r.closed.Cardinality()

			return out, err
		}

		r.remove(cur)
		r.closed.Add(cur)
		r.scene.SetNodeColor(cur, core.ColorOrange)
		if err := r.s.Step("Processing %s (f=%.1f, g=%s)", cur, r.fScore[cur], core.FormatWeight(r.gScore[cur])); err != nil {
			return stepper.Outcome{}, err
		}

		if err := r.expand(cur); err != nil {
			return stepper.Outcome{}, err
		}
		if cur != src && cur != goal {
			r.scene.SetNodeColor(cur, core.ColorDefault)
		}
	}

	r.s.Narrate("A* completed. No path found to " + goal + ".")

	return r.s.Finish(stepper.Outcome{Status: stepper.StatusNoPath, Visited: r.closed.Cardinality()}), nil
}

// expand scores every neighbor of cur that is not closed, one step each.
func (r *searcher) expand(cur string) error {
	goal := r.opts.Target
	for _, nbr := range r.g.Neighbors(cur) {
		if r.closed.Contains(nbr) {
			continue
		}
		tentative := r.gScore[cur] + r.g.Weight(cur, nbr)
		r.scene.SetEdgeStyle(cur, nbr, core.ColorAmber, core.WidthActive)
		if !r.inOpen.Contains(nbr) {
			r.push(nbr)
			r.scene.SetNodeColor(nbr, core.ColorBlue)
		}

		var err error
		if tentative < r.score(r.gScore, nbr) {
			r.prev[nbr] = cur
			r.gScore[nbr] = tentative
			r.fScore[nbr] = tentative + r.opts.Heuristic(r.g, nbr, goal)
			err = r.s.Step("Updated %s - g=%s, f=%.1f", nbr, core.FormatWeight(tentative), r.fScore[nbr])
		} else {
			err = r.s.Step("No improvement for %s", nbr)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// lowestF returns the first open vertex with the smallest f score.
func (r *searcher) lowestF() string {
	best, low := r.open[0], r.score(r.fScore, r.open[0])
	for _, id := range r.open[1:] {
		if f := r.score(r.fScore, id); f < low {
			best, low = id, f
		}
	}

	return best
}

func (r *searcher) push(id string) {
	r.open = append(r.open, id)
	r.inOpen.Add(id)
}

func (r *searcher) remove(id string) {
	if i := slices.Index(r.open, id); i >= 0 {
		r.open = slices.Delete(r.open, i, i+1)
	}
	r.inOpen.Remove(id)
}
