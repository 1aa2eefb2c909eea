// Package clock provides the per-tick time deltas that drive tween
// runs: a scaled delta subject to a global time scale (slow motion,
// hit freeze) and a real delta that ignores it.
package clock

import "time"

// maxStep caps a single tick's delta so a stall (window drag, debugger
// pause) doesn't teleport every running tween to its end.
const maxStep = 0.25

// Clock measures wall time between ticks. Not safe for concurrent use;
// the game loop owns it.
type Clock struct {
	scale     float64
	last      time.Time
	delta     float64
	realDelta float64

	now func() time.Time
}

// New returns a clock with scale 1. The first Tick after New reports a
// zero delta.
func New() *Clock {
	return &Clock{scale: 1, now: time.Now}
}

// NewWithSource returns a clock reading time from now instead of the
// wall clock. Tests use this to feed deterministic deltas.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{scale: 1, now: now}
}

// Tick advances the clock one frame and recomputes both deltas.
func (c *Clock) Tick() {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		c.delta = 0
		c.realDelta = 0
		return
	}

	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	c.realDelta = dt
	c.delta = dt * c.scale
}

// Delta returns the seconds elapsed during the last tick, multiplied by
// the global time scale.
func (c *Clock) Delta() float64 {
	return c.delta
}

// RealDelta returns the seconds elapsed during the last tick, ignoring
// the time scale.
func (c *Clock) RealDelta() float64 {
	return c.realDelta
}

// SetScale sets the global time scale. Zero pauses scaled time;
// negative scales are clamped to zero.
func (c *Clock) SetScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.scale = s
}

// Scale returns the current global time scale.
func (c *Clock) Scale() float64 {
	return c.scale
}
