package dfs

import (
	"strconv"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// frame is one vertex on the current descent path.
type frame struct {
	id        string
	neighbors []string
	next      int // index of the next neighbor to examine
}

// dfsWalker holds mutable DFS state.
type dfsWalker struct {
	s       *stepper.Session
	graph   *core.Graph
	scene   *core.Scene
	start   string
	target  string
	stack   []frame
	visited mapset.Set[string]
	parent  map[string]string
}

// DFS runs an animated depth-first traversal from startID over the
// session's graph.
// Returns ErrSessionNil or ErrStartVertexNotFound for invalid input.
// Cancellation yields a StatusCancelled outcome.
func DFS(s *stepper.Session, startID string, opts ...Option) (stepper.Outcome, error) {
	if s == nil {
		return stepper.Outcome{}, ErrSessionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := s.Graph()
	if !g.HasVertex(startID) {
		return stepper.Outcome{}, errors.Wrapf(ErrStartVertexNotFound, "dfs: %q", startID)
	}

	w := &dfsWalker{
		s:       s,
		graph:   g,
		scene:   s.Scene(),
		start:   startID,
		target:  o.Target,
		visited: mapset.NewThreadUnsafeSet[string](),
		parent:  make(map[string]string, g.VertexCount()),
	}

	out, err := w.traverse()
	if err != nil {
		return s.Stop(err)
	}

	return out, nil
}

// traverse announces the start, enters it, and then drives the frame stack
// until it empties or the target is entered.
func (w *dfsWalker) traverse() (stepper.Outcome, error) {
	w.scene.SetNodeColor(w.start, core.ColorGreen)
	if err := w.s.Step("Starting DFS from node %s", w.start); err != nil {
		return stepper.Outcome{}, err
	}

	found, err := w.enter(w.start)
	if err != nil {
		return stepper.Outcome{}, err
	}
	for !found && len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.neighbors) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		cur := top.id
		nbr := top.neighbors[top.next]
		top.next++
		// checked now, not when cur was entered: a deeper branch may have
		// reached nbr in the meantime
		if w.visited.Contains(nbr) {
			continue
		}

		w.parent[nbr] = cur
		w.scene.SetEdgeStyle(cur, nbr, core.ColorOrange, core.WidthActive)
		w.scene.SetNodeColor(nbr, core.ColorAmber)
		if err = w.s.Step("Exploring edge %s -> %s", cur, nbr); err != nil {
			return stepper.Outcome{}, err
		}
		if found, err = w.enter(nbr); err != nil {
			return stepper.Outcome{}, err
		}
	}

	if found {
		w.s.Note("Found target node %s! Reconstructing path...", w.target)
		out, err := w.s.TracePath(w.parent, w.start, w.target, stepper.Hops)
		out.Visited = w.visited.Cardinality()

		return out, err
	}

	return w.exhausted(), nil
}

// enter visits id and pushes its frame. It reports whether id is the target.
func (w *dfsWalker) enter(id string) (bool, error) {
	w.visited.Add(id)
	w.scene.SetNodeColor(id, core.ColorBlue)
	if err := w.s.Step("Visiting node %s", id); err != nil {
		return false, err
	}
	if w.target != "" && id == w.target {
		return true, nil
	}
	w.stack = append(w.stack, frame{id: id, neighbors: w.graph.Neighbors(id)})

	return false, nil
}

func (w *dfsWalker) exhausted() stepper.Outcome {
	visited := w.visited.Cardinality()
	if w.target != "" {
		w.s.Narrate("DFS completed. Target node " + w.target + " not reachable from " + w.start + ".")
		return w.s.Finish(stepper.Outcome{Status: stepper.StatusNoPath, Visited: visited})
	}
	w.s.Narrate("DFS completed. Visited " + strconv.Itoa(visited) + " nodes.")

	return w.s.Finish(stepper.Outcome{Status: stepper.StatusCompleted, Visited: visited})
}
