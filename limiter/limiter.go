// Package limiter paces a frame loop to a fixed number of frames per second.
//
// The loop marks the start of each frame and, once the frame's work is done,
// waits out whatever is left of the frame period. A frame that overruns
// simply starts the next one late; lost time is never made up with extra
// frames.
package limiter

import (
	"errors"
	"time"
)

// ErrBadRate is returned for a rate below one frame per second.
var ErrBadRate = errors.New("frame rate must be at least 1")

// Clock is the limiter's view of time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FpsLimiter waits out the remainder of each frame.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	clock   Clock
	start   time.Time
	started bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	return NewFPSLimiterWithClock(framesPerSecond, systemClock{})
}

// NewFPSLimiterWithClock is NewFPSLimiter with an explicit clock.
func NewFPSLimiterWithClock(framesPerSecond int, clock Clock) (*FpsLimiter, error) {
	lim := &FpsLimiter{clock: clock}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the frame rate.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond < 1 {
		return ErrBadRate
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	return nil
}

// Period is the length of one frame.
func (lim *FpsLimiter) Period() time.Duration {
	return lim.secondsPerFrame
}

// Start marks the beginning of a frame.
func (lim *FpsLimiter) Start() {
	lim.start = lim.clock.Now()
	lim.started = true
}

// Wait sleeps until one period after the last Start and returns how long it
// slept. It returns immediately if Start was never called or the frame has
// already overrun.
func (lim *FpsLimiter) Wait() time.Duration {
	if !lim.started {
		return 0
	}
	lim.started = false

	remaining := lim.secondsPerFrame - lim.clock.Now().Sub(lim.start)
	if remaining <= 0 {
		return 0
	}
	lim.clock.Sleep(remaining)
	return remaining
}
