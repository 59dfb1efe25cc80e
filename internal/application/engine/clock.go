package engine

import "time"

// Clock supplies the time used by the tick gate.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. time.Now carries a monotonic reading,
// so elapsed-time comparisons are immune to wall clock changes.
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepClock only moves when advanced. Hosts running at a fixed frame rate advance
// it once per frame, which makes a session reproducible from its input log.
type StepClock struct {
	now time.Time
}

// NewStepClock creates a step clock starting at start
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now returns the clock's current time
func (c *StepClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *StepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// FrameDuration returns the length of one frame at fps frames per second,
// rounded up to the nanosecond. Truncating would let whole frames fall short
// of an interval they should span: 12 truncated 1/60s frames are 199.99ms.
func FrameDuration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return (time.Second + time.Duration(fps) - 1) / time.Duration(fps)
}
