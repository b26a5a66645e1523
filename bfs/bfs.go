package bfs

import (
	"strconv"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// walker encapsulates mutable BFS state.
type walker struct {
	s       *stepper.Session
	graph   *core.Graph
	scene   *core.Scene
	start   string
	target  string
	queue   []string
	queued  mapset.Set[string]
	visited mapset.Set[string]
	parent  map[string]string
}

// BFS runs an animated breadth-first search on the session's graph starting
// from startID. Every step is published through s and paced by its
// controller.
// Returns ErrSessionNil or ErrStartVertexNotFound for invalid input. A
// cancelled run is reported as a StatusCancelled outcome, not an error.
func BFS(s *stepper.Session, startID string, opts ...Option) (stepper.Outcome, error) {
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := s.Graph()
	if !g.HasVertex(startID) {
		return stepper.Outcome{}, errors.Wrapf(ErrStartVertexNotFound, "bfs: %q", startID)
	}

	n := g.VertexCount()
	w := &walker{
		s:       s,
		graph:   g,
		scene:   s.Scene(),
		start:   startID,
		target:  o.Target,
		queue:   make([]string, 0, n),
		queued:  mapset.NewThreadUnsafeSet[string](),
		visited: mapset.NewThreadUnsafeSet[string](),
		parent:  make(map[string]string, n),
	}

	out, err := w.loop()
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

// loop seeds the queue with the start vertex and processes it until the
// target is found or the frontier is exhausted.
func (w *walker) loop() (stepper.Outcome, error) {
	w.scene.SetNodeColor(w.start, core.ColorGreen)
	if err := w.s.Step("Starting BFS from node %s", w.start); err != nil {
		return stepper.Outcome{}, err
	}
	w.enqueue(w.start)

	for len(w.queue) > 0 {
		cur := w.dequeue()
		if w.visited.Contains(cur) {
			continue
		}
		if err := w.visit(cur); err != nil {
			return stepper.Outcome{}, err
		}
		if w.target != "" && cur == w.target {
			return w.found()
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return stepper.Outcome{}, err
		}
	}

	return w.exhausted(), nil
}

func (w *walker) enqueue(id string) {
	w.queue = append(w.queue, id)
	w.queued.Add(id)
}

func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]
	w.queued.Remove(id)

	return id
}

// visit marks id visited and colours it. The start vertex was already
// announced, so it gets a frame but no numbered step of its own.
func (w *walker) visit(id string) error {
	w.visited.Add(id)
	w.scene.SetNodeColor(id, core.ColorBlue)
	if id != w.start {
		w.s.Note("Visiting node %s", id)
	}

	return w.s.Frame()
}

// enqueueNeighbors adds every neighbor of cur that is neither visited nor
// already queued, one step each, in declaration order.
func (w *walker) enqueueNeighbors(cur string) error {
	for _, nbr := range w.graph.Neighbors(cur) {
		if w.visited.Contains(nbr) || w.queued.Contains(nbr) {
			continue
		}
		w.enqueue(nbr)
		w.parent[nbr] = cur
		w.scene.SetEdgeStyle(cur, nbr, core.ColorOrange, core.WidthActive)
		w.scene.SetNodeColor(nbr, core.ColorAmber)
		if err := w.s.Step("Added %s to queue from %s", nbr, cur); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) found() (stepper.Outcome, error) {
	w.s.Note("Found target node %s! Reconstructing path...", w.target)
	out, err := w.s.TracePath(w.parent, w.start, w.target, stepper.Hops)
	out.Visited = w.visited.Cardinality()

	return out, err
}

func (w *walker) exhausted() stepper.Outcome {
	visited := w.visited.Cardinality()
	if w.target != "" && !w.visited.Contains(w.target) {
		w.s.Narrate("BFS completed. Target node " + w.target + " not reachable from " + w.start + ".")
		return w.s.Finish(stepper.Outcome{Status: stepper.StatusNoPath, Visited: visited})
	}
	w.s.Narrate("BFS completed. Visited " + strconv.Itoa(visited) + " nodes.")

	return w.s.Finish(stepper.Outcome{Status: stepper.StatusCompleted, Visited: visited})
}
