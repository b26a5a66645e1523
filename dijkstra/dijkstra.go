package dijkstra

import (
	"math"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Dijkstra animates a shortest-path search from Options.Source to
// Options.Target over the session's graph.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. s must be non-nil (ErrSessionNil).
//  3. Target must be non-empty (ErrEmptyTarget).
//  4. The graph must contain Source and Target (ErrVertexNotFound).
//  5. No edge may have a negative weight (ErrNegativeWeight).
//
// Outcomes: StatusPathFound with Path and Cost (total distance),
// StatusNoPath, or StatusCancelled.
func Dijkstra(s *stepper.Session, opts ...Option) (stepper.Outcome, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate request
	if cfg.Source == "" {
		return stepper.Outcome{}, ErrEmptySource
	}
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	if cfg.Target == "" {
		return stepper.Outcome{}, ErrEmptyTarget
	}
	g := s.Graph()
	for _, id := range []string{cfg.Source, cfg.Target} {
		if !g.HasVertex(id) {
			return stepper.Outcome{}, errors.Wrapf(ErrVertexNotFound, "dijkstra: %q", id)
		}
	}

	// 3) Pre-scan all edges to detect negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return stepper.Outcome{}, errors.Wrapf(ErrNegativeWeight, "dijkstra: edge %s->%s weight=%s",
				e.From, e.To, core.FormatWeight(e.Weight))
		}
	}

	// 4) Run
	r := &runner{
		s:       s,
		g:       g,
		scene:   s.Scene(),
		options: cfg,
		order:   g.Vertices(),
		dist:    make(map[string]float64, g.VertexCount()),
		prev:    make(map[string]string, g.VertexCount()),
		settled: mapset.NewThreadUnsafeSet[string](),
	}
	out, err := r.process()
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	s       *stepper.Session
	g       *core.Graph
	scene   *core.Scene
	options Options
	order   []string           // vertex insertion order; the selection scan walks it
	dist    map[string]float64 // current best distance from Source
	prev    map[string]string  // predecessor on the best known path
	settled mapset.Set[string] // vertices whose distance is final
}

// init sets every distance to +∞ except the source and announces the start.
func (r *runner) init() error {
	for _, v := range r.order {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	r.scene.SetNodeColor(r.options.Source, core.ColorGreen)

	return r.s.Step("Initialize distances. Start: %s (distance: 0)", r.options.Source)
}

// process is the main loop: select, settle, relax, until the target is
// selected or no finite candidate remains.
func (r *runner) process() (stepper.Outcome, error) {
	if err := r.init(); err != nil {
		return stepper.Outcome{}, err
	}

	for {
		u, ok := r.selectMin()
		if !ok {
			break
		}

		r.settled.Add(u)
		r.scene.SetNodeColor(u, core.ColorOrange)
		if err := r.s.Step("Processing node %s (distance: %s)", u, core.FormatWeight(r.dist[u])); err != nil {
			return stepper.Outcome{}, err
		}

		if u == r.options.Target {
			r.s.Note("Reached target! Reconstructing shortest path...")
			out, err := r.s.TracePath(r.prev, r.options.Source, r.options.Target, stepper.Distance)
			out.Visited = r.settled.Cardinality()

			return out, err
		}

		if err := r.relax(u); err != nil {
			return stepper.Outcome{}, err
		}
		r.scene.SetNodeColor(u, core.ColorDefault)
	}

	r.s.Narrate("Dijkstra completed. No path found to " + r.options.Target + ".")

	return r.s.Finish(stepper.Outcome{Status: stepper.StatusNoPath, Visited: r.settled.Cardinality()}), nil
}

// selectMin returns the first unsettled vertex, in insertion order, with the
// smallest finite distance.
func (r *runner) selectMin() (string, bool) {
	best, low := "", math.Inf(1)
	for _, v := range r.order {
		if r.settled.Contains(v) {
			continue
		}
		if r.dist[v] < low {
			best, low = v, r.dist[v]
		}
	}

	return best, best != ""
}

// relax examines each declared neighbor of u that is still unsettled, one
// step per neighbor.
func (r *runner) relax(u string) error {
	for _, v := range r.g.Neighbors(u) {
		if r.settled.Contains(v) {
			continue
		}
		alt := r.dist[u] + r.g.Weight(u, v)
		r.scene.SetEdgeStyle(u, v, core.ColorAmber, core.WidthActive)

		var err error
		if alt < r.dist[v] {
			r.dist[v] = alt
			r.prev[v] = u
			r.scene.SetNodeColor(v, core.ColorBlue)
			err = r.s.Step("Updated %s distance to %s via %s", v, core.FormatWeight(alt), u)
		} else {
			err = r.s.Step("No improvement for %s (current: %s, via %s: %s)",
				v, core.FormatWeight(r.dist[v]), u, core.FormatWeight(alt))
		}
		if err != nil {
			return err
		}
	}

	return nil
}
