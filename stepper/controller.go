package stepper

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
)

// Speed slider bounds. Level l maps to a per-step delay of 1000 - 90*l ms.
const (
	MinSpeed = 0
	MaxSpeed = 10
)

// Defaults for a Controller.
const (
	DefaultDelay        = 500 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
)

// Controller holds the knobs a driver turns while a run is in flight: the
// per-step delay and the pause flag. It is safe to use from any goroutine.
// Changes take effect at the next suspension point.
type Controller struct {
	delay  atomic.Int64
	paused atomic.Bool
	poll   time.Duration
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDelay sets the initial per-step delay. Negative values are treated as zero.
func WithDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.SetDelay(d) }
}

// WithPollInterval sets how often a paused run re-checks the pause flag.
func WithPollInterval(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.poll = d
		}
	}
}

// NewController returns a Controller with DefaultDelay and DefaultPollInterval.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{poll: DefaultPollInterval}
	c.delay.Store(int64(DefaultDelay))
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetDelay sets the per-step delay.
func (c *Controller) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.delay.Store(int64(d))
}

// Delay returns the current per-step delay.
func (c *Controller) Delay() time.Duration {
	return time.Duration(c.delay.Load())
}

// SpeedDelay converts a slider level into a per-step delay.
func SpeedDelay(level int) (time.Duration, error) {
	if level < MinSpeed || level > MaxSpeed {
		return 0, errors.Wrapf(ErrSpeedOutOfRange, "stepper: level %d not in [%d, %d]", level, MinSpeed, MaxSpeed)
	}

	return time.Duration(1000-90*level) * time.Millisecond, nil
}

// SetSpeed sets the delay from a slider level in [MinSpeed, MaxSpeed].
func (c *Controller) SetSpeed(level int) error {
	d, err := SpeedDelay(level)
	if err != nil {
		return err
	}
	c.SetDelay(d)

	return nil
}

// Pause makes the next suspension point block until Resume.
func (c *Controller) Pause() { c.paused.Store(true) }

// Resume clears the pause flag.
func (c *Controller) Resume() { c.paused.Store(false) }

// TogglePause flips the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	for {
		old := c.paused.Load()
		if c.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports the pause flag.
func (c *Controller) Paused() bool { return c.paused.Load() }

// suspend is the body of every suspension point: wait out the delay, then
// hold while paused, polling at c.poll. It returns ErrCancelled as soon as
// ctx is done.
func (c *Controller) suspend(ctx context.Context) error {
	if err := sleep(ctx, c.Delay()); err != nil {
		return err
	}
	for c.Paused() {
		if err := sleep(ctx, c.poll); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return ErrCancelled
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ErrCancelled
	case <-t.C:
		return nil
	}
}
