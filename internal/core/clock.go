package core

import "time"

// DefaultMaxFrameDelta caps a single physics step. Longer gaps (a suspended
// terminal, a stalled SSH pipe) are treated as one capped frame.
const DefaultMaxFrameDelta = 33 * time.Millisecond

// FrameClock turns consecutive frame timestamps into clamped deltas.
type FrameClock struct {
	max     time.Duration
	last    time.Time
	started bool
}

// NewFrameClock creates a clock that never reports more than max per frame.
// A non-positive max falls back to DefaultMaxFrameDelta.
func NewFrameClock(max time.Duration) *FrameClock {
	if max <= 0 {
		max = DefaultMaxFrameDelta
	}
	return &FrameClock{max: max}
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick has no predecessor and returns 0; so does a timestamp that
// goes backwards.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if d > c.max {
		d = c.max
	}
	return d.Seconds()
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
