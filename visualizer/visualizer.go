package visualizer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Visualizer drives one graph and at most one run at a time. Its methods are
// safe to call from any goroutine.
type Visualizer struct {
	// runMu serializes stopping the current run and installing the next.
	runMu     sync.Mutex
	mu        sync.Mutex
	graph     *core.Graph
	scene     *core.Scene
	layout    core.Layout
	ctl       *stepper.Controller
	renderer  stepper.Renderer
	narrator  stepper.Narrator
	log       *slog.Logger
	narration string
	current   *Run
}

// New returns an empty Visualizer. Without options frames and narration are
// discarded, the layout is core.DefaultLayout and the pace is the
// controller's default.
func New(opts ...Option) *Visualizer {
	v := &Visualizer{
		scene:    core.NewScene(),
		layout:   core.DefaultLayout(),
		ctl:      stepper.NewController(),
		renderer: stepper.RendererFunc(func(*core.Graph, *core.Scene) error { return nil }),
		narrator: stepper.NarratorFunc(func(string) {}),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Load parses adjacency text, lays it out and draws it once. Malformed lines
// are reported, not fatal. Any run in flight is cancelled first.
func (v *Visualizer) Load(text string) (core.ParseReport, error) {
	g, rep, err := core.ParseString(text)
	if err != nil {
		return rep, errors.Wrap(err, "visualizer: load")
	}
	if len(rep.Skipped) > 0 {
		v.log.Warn("skipped malformed lines", "lines", rep.Skipped)
	}

	return rep, v.LoadGraph(g)
}

// LoadGraph installs a graph built elsewhere, for example by package builder.
func (v *Visualizer) LoadGraph(g *core.Graph) error {
	if g == nil {
		return ErrNoGraph
	}
	v.runMu.Lock()
	defer v.runMu.Unlock()
	v.stop()

	v.mu.Lock()
	g.ApplyLayout(v.layout)
	v.graph = g
	v.scene.Reset()
	v.mu.Unlock()

	v.draw()
	v.publish(fmt.Sprintf("Graph rendered with %d nodes and %d edges.", g.VertexCount(), g.EdgeCount()))
	v.log.Info("graph loaded", "nodes", g.VertexCount(), "edges", g.EdgeCount())

	return nil
}

// Graph returns the loaded graph, or nil.
func (v *Visualizer) Graph() *core.Graph {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.graph
}

// Scene returns the presentation state. Read it only while no run is in
// flight; a running algorithm writes to it without locking.
func (v *Visualizer) Scene() *core.Scene { return v.scene }

// Controller returns the pacing knobs shared with every run.
func (v *Visualizer) Controller() *stepper.Controller { return v.ctl }

// Start validates req and launches the algorithm on its own goroutine. A run
// already in flight is cancelled and waited for before the scene is reset.
func (v *Visualizer) Start(ctx context.Context, req Request) (*Run, error) {
	alg, start, end, err := v.validate(req)
	if err != nil {
		return nil, err
	}
	v.runMu.Lock()
	defer v.runMu.Unlock()
	v.stop()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.scene.Reset()
	v.ctl.Resume()

	runCtx, cancel := context.WithCancel(ctx)
	s, err := stepper.NewSession(runCtx, v.graph,
		stepper.WithScene(v.scene),
		stepper.WithController(v.ctl),
		stepper.WithRenderer(v.renderer),
		stepper.WithNarrator(stepper.NarratorFunc(v.publish)),
		stepper.WithLogger(v.log.With("algorithm", alg.Name)),
	)
	if err != nil {
		cancel()
		return nil, err
	}

	r := newRun(alg.Name, cancel)
	v.current = r
	v.log.Info("run started", "algorithm", alg.Name, "start", start, "end", end)
	go func() {
		began := time.Now()
		out, err := alg.run(s, start, end)
		cancel()
		if err != nil {
			v.log.Error("run failed", "algorithm", alg.Name, "err", err)
		} else {
			v.log.Info("run finished", "algorithm", alg.Name, "status", out.Status,
				"steps", out.Steps, "elapsed", time.Since(began).Round(time.Millisecond))
		}
		r.finish(out, err)
	}()

	return r, nil
}

// Run is Start followed by Wait.
func (v *Visualizer) Run(ctx context.Context, req Request) (stepper.Outcome, error) {
	r, err := v.Start(ctx, req)
	if err != nil {
		return stepper.Outcome{}, err
	}

	return r.Wait()
}

// validate checks req against the loaded graph and the registry.
func (v *Visualizer) validate(req Request) (Algorithm, string, string, error) {
	v.mu.Lock()
	g := v.graph
	v.mu.Unlock()
	if g == nil {
		return Algorithm{}, "", "", ErrNoGraph
	}
	alg, ok := Lookup(req.Algorithm)
	if !ok {
		return Algorithm{}, "", "", errors.Wrapf(ErrUnknownAlgorithm, "visualizer: %q", req.Algorithm)
	}

	start, end := strings.TrimSpace(req.Start), strings.TrimSpace(req.End)
	if alg.Start == Ignored {
		start = ""
	}
	if alg.End == Ignored {
		end = ""
	}
	if alg.Start == Required {
		if start == "" {
			return Algorithm{}, "", "", errors.Wrapf(ErrStartRequired, "visualizer: %s", alg.Title)
		}
		if !g.HasVertex(start) {
			return Algorithm{}, "", "", errors.Wrapf(ErrUnknownNode, "visualizer: start %q", start)
		}
	}
	if alg.End == Required {
		if end == "" {
			return Algorithm{}, "", "", errors.Wrapf(ErrEndRequired, "visualizer: %s", alg.Title)
		}
		if !g.HasVertex(end) {
			return Algorithm{}, "", "", errors.Wrapf(ErrUnknownNode, "visualizer: end %q", end)
		}
	}

	return alg, start, end, nil
}

// Pause holds the current run at its next suspension point.
func (v *Visualizer) Pause() { v.ctl.Pause() }

// Resume releases a paused run.
func (v *Visualizer) Resume() { v.ctl.Resume() }

// TogglePause flips the pause flag and reports whether the run is now paused.
func (v *Visualizer) TogglePause() bool { return v.ctl.TogglePause() }

// Paused reports the pause flag.
func (v *Visualizer) Paused() bool { return v.ctl.Paused() }

// SetSpeed sets the pace from a slider level in [stepper.MinSpeed, stepper.MaxSpeed].
func (v *Visualizer) SetSpeed(level int) error { return v.ctl.SetSpeed(level) }

// SetDelay sets the per-step delay directly.
func (v *Visualizer) SetDelay(d time.Duration) { v.ctl.SetDelay(d) }

// Reset cancels any run, waits for it, clears the pause flag and every
// colour, redraws and announces readiness.
func (v *Visualizer) Reset() {
	v.runMu.Lock()
	defer v.runMu.Unlock()
	v.stop()
	v.ctl.Resume()
	v.mu.Lock()
	v.scene.Reset()
	v.mu.Unlock()
	v.draw()
	v.publish(ReadyMessage)
}

// Running reports whether a run is in flight.
func (v *Visualizer) Running() bool {
	v.mu.Lock()
	r := v.current
	v.mu.Unlock()
	if r == nil {
		return false
	}
	select {
	case <-r.Done():
		return false
	default:
		return true
	}
}

// Narration returns the last published message.
func (v *Visualizer) Narration() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.narration
}

// NodeInfo describes a vertex as "Node: A | Connections: B, C" and publishes
// it. Vertices without a declaration of their own have no connections part.
func (v *Visualizer) NodeInfo(id string) (string, error) {
	g := v.Graph()
	if g == nil {
		return "", ErrNoGraph
	}
	if !g.HasVertex(id) {
		return "", errors.Wrapf(ErrUnknownNode, "visualizer: %q", id)
	}
	info := "Node: " + id
	if slices.Contains(g.Declared(), id) {
		info += " | Connections: " + strings.Join(g.Neighbors(id), ", ")
	}
	v.publish(info)

	return info, nil
}

// stop cancels the current run, if any, and waits for its goroutine.
func (v *Visualizer) stop() {
	v.mu.Lock()
	r := v.current
	v.current = nil
	v.mu.Unlock()
	if r != nil {
		r.Cancel()
		<-r.Done()
	}
}

func (v *Visualizer) publish(msg string) {
	v.mu.Lock()
	v.narration = msg
	v.mu.Unlock()
	v.narrator.Narrate(msg)
}

func (v *Visualizer) draw() {
	g := v.Graph()
	if g == nil {
		return
	}
	if err := v.renderer.Draw(g, v.scene); err != nil {
		v.log.Warn("render failed", "err", err)
	}
}
