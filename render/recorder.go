package render

import (
	"slices"
	"sync"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
)

// Frame is one recorded draw.
type Frame struct {
	// Narration is the message that was current when the frame was drawn.
	Narration string
	// Scene is an independent copy of the presentation state.
	Scene *core.Scene
}

// Recorder is both a renderer and a narrator: it keeps every narration and a
// snapshot of every frame. It is safe to read while a run is drawing into it.
type Recorder struct {
	mu         sync.Mutex
	narrations []string
	frames     []Frame
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Narrate records msg.
func (r *Recorder) Narrate(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.narrations = append(r.narrations, msg)
}

// Draw records a snapshot of sc.
func (r *Recorder) Draw(_ *core.Graph, sc *core.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := Frame{Scene: sc.Snapshot()}
	if n := len(r.narrations); n > 0 {
		f.Narration = r.narrations[n-1]
	}
	r.frames = append(r.frames, f)

	return nil
}

// Narrations returns every recorded message in order.
func (r *Recorder) Narrations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.narrations)
}

// Frames returns every recorded frame in order.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.frames)
}

// Last returns the most recent frame, if any.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}

	return r.frames[len(r.frames)-1], true
}

// Clear drops everything recorded so far.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.narrations = nil
	r.frames = nil
}
