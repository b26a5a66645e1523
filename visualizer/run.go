package visualizer

import (
	"context"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
)

// Run is a handle on one launched algorithm.
type Run struct {
	algorithm string
	cancel    context.CancelFunc
	done      chan struct{}
	out       stepper.Outcome
	err       error
}

func newRun(algorithm string, cancel context.CancelFunc) *Run {
	return &Run{algorithm: algorithm, cancel: cancel, done: make(chan struct{})}
}

// Algorithm returns the canonical name of the running algorithm.
func (r *Run) Algorithm() string { return r.algorithm }

// Done is closed when the run has stopped for any reason.
func (r *Run) Done() <-chan struct{} { return r.done }

// Cancel asks the run to stop at its next suspension point. The run then
// finishes with stepper.StatusCancelled.
func (r *Run) Cancel() { r.cancel() }

// Wait blocks until the run stops and returns its outcome. Only request
// errors raised inside the algorithm are returned as errors; cancellation
// and "no path" are outcomes.
func (r *Run) Wait() (stepper.Outcome, error) {
	<-r.done

	return r.out, r.err
}

func (r *Run) finish(out stepper.Outcome, err error) {
	r.out, r.err = out, err
	close(r.done)
}
