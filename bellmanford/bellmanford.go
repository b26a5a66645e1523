package bellmanford

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// relaxer holds the mutable state of one Bellman-Ford run.
type relaxer struct {
	s     *stepper.Session
	scene *core.Scene
	opts  Options
	nodes []string
	edges []core.Edge
	dist  map[string]float64
	prev  map[string]string
}

// BellmanFord animates Bellman-Ford from Options.Source and reports the path
// to Options.Target.
//
// Outcomes: StatusPathFound, StatusNoPath, StatusNegativeCycle or
// StatusCancelled. Request errors are returned before the first step.
func BellmanFord(s *stepper.Session, opts ...Option) (stepper.Outcome, error) {
	var o Options
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
			return stepper.Outcome{}, errors.Wrapf(ErrVertexNotFound, "bellmanford: %q", id)
		}
	}

	r := &relaxer{
		s:     s,
		scene: s.Scene(),
		opts:  o,
		nodes: g.Vertices(),
		edges: g.Edges(),
		dist:  make(map[string]float64, g.VertexCount()),
		prev:  make(map[string]string, g.VertexCount()),
	}
	out, err := r.run()
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

func (r *relaxer) run() (stepper.Outcome, error) {
	for _, v := range r.nodes {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.opts.Source] = 0
	r.scene.SetNodeColor(r.opts.Source, core.ColorGreen)
	if err := r.s.Step("Initialize distances for Bellman-Ford"); err != nil {
		return stepper.Outcome{}, err
	}

	for i := 1; i < len(r.nodes); i++ {
		if err := r.s.Step("Iteration %d - Relaxing all edges", i); err != nil {
			return stepper.Outcome{}, err
		}
		updated, err := r.pass()
		if err != nil {
			return stepper.Outcome{}, err
		}
		if !updated {
			if err = r.s.Step("No updates in iteration %d, algorithm converged early", i); err != nil {
				return stepper.Outcome{}, err
			}
			break
		}
	}

	if err := r.s.Step("Checking for negative cycles..."); err != nil {
		return stepper.Outcome{}, err
	}
	if e, ok := r.relaxable(); ok {
		r.scene.SetEdgeStyle(e.From, e.To, core.ColorRed, core.WidthActive)
		r.s.Narrate("Negative cycle detected! Algorithm terminated.")
		return r.s.Finish(stepper.Outcome{Status: stepper.StatusNegativeCycle}), nil
	}

	if !math.IsInf(r.dist[r.opts.Target], 1) {
		r.s.Note("Bellman-Ford completed. Reconstructing path...")
		return r.s.TracePath(r.prev, r.opts.Source, r.opts.Target, stepper.Distance)
	}
	r.s.Narrate("Bellman-Ford completed. No path to " + r.opts.Target + " or node unreachable.")

	return r.s.Finish(stepper.Outcome{Status: stepper.StatusNoPath}), nil
}

// pass relaxes every edge whose tail is reached, one step per edge, and
// reports whether any distance improved.
func (r *relaxer) pass() (bool, error) {
	updated := false
	for _, e := range r.edges {
		if math.IsInf(r.dist[e.From], 1) {
			continue
		}
		d := r.dist[e.From] + e.Weight
		r.scene.SetEdgeStyle(e.From, e.To, core.ColorAmber, core.WidthActive)

		var err error
		if d < r.dist[e.To] {
			r.dist[e.To] = d
			r.prev[e.To] = e.From
			updated = true
			r.scene.SetNodeColor(e.To, core.ColorBlue)
			err = r.s.Step("Updated %s distance to %s via %s", e.To, core.FormatWeight(d), e.From)
		} else {
			err = r.s.Step("No update needed for edge %s -> %s", e.From, e.To)
		}
		if err != nil {
			return updated, err
		}
		r.scene.SetEdgeStyle(e.From, e.To, core.ColorDefault, core.WidthDefault)
	}

	return updated, nil
}

// relaxable returns the first edge that could still shorten a distance.
func (r *relaxer) relaxable() (core.Edge, bool) {
	for _, e := range r.edges {
		if !math.IsInf(r.dist[e.From], 1) && r.dist[e.From]+e.Weight < r.dist[e.To] {
			return e, true
		}
	}

	return core.Edge{}, false
}
