package stepper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Session is one algorithm invocation. It owns the step counter and the
// current narration, and routes every emission through the renderer, the
// narrator and the controller.
//
// A step is: bounded algorithmic work, then Note (numbered narration), then
// Frame (draw + suspend). Step does the last two at once. Everything on a
// Session runs on the goroutine executing the algorithm.
type Session struct {
	ctx       context.Context
	graph     *core.Graph
	scene     *core.Scene
	ctl       *Controller
	renderer  Renderer
	narrator  Narrator
	log       *slog.Logger
	step      int
	narration string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithScene makes the Session write presentation state into sc.
func WithScene(sc *core.Scene) SessionOption {
	return func(s *Session) {
		if sc != nil {
			s.scene = sc
		}
	}
}

// WithController paces the Session with c.
func WithController(c *Controller) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.ctl = c
		}
	}
}

// WithRenderer draws each frame with r.
func WithRenderer(r Renderer) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithNarrator publishes each narration to n.
func WithNarrator(n Narrator) SessionOption {
	return func(s *Session) {
		if n != nil {
			s.narrator = n
		}
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession prepares a run over g. Without options the Session has a fresh
// scene, no delay, and discards frames and narration.
func NewSession(ctx context.Context, g *core.Graph, opts ...SessionOption) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Session{
		ctx:      ctx,
		graph:    g,
		scene:    core.NewScene(),
		ctl:      NewController(WithDelay(0)),
		renderer: nopRenderer{},
		narrator: nopNarrator{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Graph returns the graph under animation.
func (s *Session) Graph() *core.Graph { return s.graph }

// Scene returns the presentation state the Session writes to.
func (s *Session) Scene() *core.Scene { return s.scene }

// Context returns the run's context.
func (s *Session) Context() context.Context { return s.ctx }

// Steps returns how many numbered steps have been emitted.
func (s *Session) Steps() int { return s.step }

// Narration returns the last published message.
func (s *Session) Narration() string { return s.narration }

// Cancelled reports whether the run's context is done.
func (s *Session) Cancelled() bool { return s.ctx.Err() != nil }

// Narrate publishes msg as-is.
func (s *Session) Narrate(msg string) {
	s.narration = msg
	s.narrator.Narrate(msg)
}

// Note advances the step counter and publishes "Step N: <msg>".
func (s *Session) Note(format string, args ...any) {
	s.step++
	s.Narrate(fmt.Sprintf("Step %d: ", s.step) + fmt.Sprintf(format, args...))
}

// Draw renders the current scene. Render failures are logged, never fatal.
func (s *Session) Draw() {
	if err := s.renderer.Draw(s.graph, s.scene); err != nil {
		s.log.Warn("render failed", "step", s.step, "err", err)
	}
}

// Frame is a suspension point: draw, wait out the delay, hold while paused.
// Nothing is drawn once the run is cancelled.
func (s *Session) Frame() error {
	if s.Cancelled() {
		return ErrCancelled
	}
	s.Draw()
	s.log.Debug("step", "n", s.step, "narration", s.narration)

	return s.ctl.suspend(s.ctx)
}

// Step is Note followed by Frame.
func (s *Session) Step(format string, args ...any) error {
	if s.Cancelled() {
		return ErrCancelled
	}
	s.Note(format, args...)

	return s.Frame()
}

// Stop converts the error that interrupted a run into its result: a
// cancelled outcome for ErrCancelled, the error itself otherwise.
func (s *Session) Stop(err error) (Outcome, error) {
	if errors.Is(err, ErrCancelled) {
		return Outcome{Status: StatusCancelled, Steps: s.step, Narration: s.narration}, nil
	}

	return Outcome{}, err
}

// Finish stamps o with the step count and the last narration and draws the
// final frame.
func (s *Session) Finish(o Outcome) Outcome {
	s.Draw()
	o.Steps = s.step
	o.Narration = s.narration

	return o
}
