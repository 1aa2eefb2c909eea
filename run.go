// Package tween animates values between a start and an end over time.
// A Run is an explicit state machine advanced by Step; the Runner
// drives every run from the game loop and hands out cancellation
// handles. Interpolation and easing live in the interp and ease
// subpackages.
package tween

import (
	"errors"
	"fmt"

	"github.com/milk9111/tween/ease"
	"github.com/milk9111/tween/interp"
)

var (
	ErrNonPositiveDuration = errors.New("tween: duration must be positive")
	ErrNilUpdate           = errors.New("tween: update callback is nil")
)

// Status is the result of stepping a run.
type Status uint8

const (
	// Continue means the run is still in flight.
	Continue Status = iota
	// Done means the run delivered its final value (or aborted on error)
	// and must not be stepped again.
	Done
)

// Run is one independent animation from a start value to an end value.
// It owns no scheduling: the caller (usually a Runner or an ECS system)
// feeds it time deltas through Step.
type Run struct {
	start    interp.Value
	end      interp.Value
	duration float64
	elapsed  float64

	mode   ease.Mode
	factor float64
	curve  ease.Curve

	rotation bool
	realtime bool

	onUpdate   func(interp.Value)
	onComplete func()

	value interp.Value
	done  bool
}

// NewRun builds a linear-space run. The value kinds are validated here,
// before any callback fires; rotation-only kinds such as quaternions
// are rejected. onUpdate may be nil when the caller polls Value after
// each step instead.
func NewRun(duration float64, start, end interp.Value, onUpdate func(interp.Value), opts ...Option) (*Run, error) {
	return newRun(duration, start, end, onUpdate, false, opts)
}

// NewRotationRun builds a run that interpolates spherically. Only
// rotation kinds (vec3, ivec3, quat) are accepted.
func NewRotationRun(duration float64, start, end interp.Value, onUpdate func(interp.Value), opts ...Option) (*Run, error) {
	return newRun(duration, start, end, onUpdate, true, opts)
}

func newRun(duration float64, start, end interp.Value, onUpdate func(interp.Value), rotation bool, opts []Option) (*Run, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveDuration, duration)
	}

	// Probe the interpolator at t=0 so an unsupported or mismatched
	// kind fails at run start instead of on the first frame.
	var err error
	if rotation {
		_, err = interp.Slerp(start, end, 0)
	} else {
		_, err = interp.Lerp(start, end, 0)
	}
	if err != nil {
		return nil, err
	}

	r := &Run{
		start:    start,
		end:      end,
		duration: duration,
		mode:     ease.Linear,
		factor:   1,
		rotation: rotation,
		onUpdate: onUpdate,
		value:    start,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Step advances the run by delta seconds. Each step invokes the update
// callback with the interpolated value; the final step delivers the
// exact end value so accumulated float error never leaves the run
// short of its target, then fires the completion callback once. An
// easing or interpolation error aborts the run without invoking either
// callback again.
func (r *Run) Step(delta float64) (Status, error) {
	if r.done {
		return Done, nil
	}

	r.elapsed += delta
	if r.elapsed >= r.duration {
		r.done = true
		r.value = r.end
		if r.onUpdate != nil {
			r.onUpdate(r.end)
		}
		if r.onComplete != nil {
			r.onComplete()
		}
		return Done, nil
	}

	t := r.elapsed / r.duration
	if t < 0 {
		t = 0
	}

	eased := t
	if r.curve != nil {
		eased = r.curve(t)
	} else {
		var err error
		eased, err = ease.Ease(r.mode, r.factor, t)
		if err != nil {
			r.done = true
			return Done, err
		}
	}

	var (
		v   interp.Value
		err error
	)
	if r.rotation {
		v, err = interp.Slerp(r.start, r.end, eased)
	} else {
		v, err = interp.Lerp(r.start, r.end, eased)
	}
	if err != nil {
		r.done = true
		return Done, err
	}

	r.value = v
	if r.onUpdate != nil {
		r.onUpdate(v)
	}
	return Continue, nil
}

// Value returns the most recently applied value (the start value before
// the first step). Callers that want to own application instead of
// using the update callback read this after each step.
func (r *Run) Value() interp.Value {
	return r.value
}

// Finished reports whether the run has completed or aborted.
func (r *Run) Finished() bool {
	return r.done
}

// Realtime reports whether the run consumes unscaled deltas.
func (r *Run) Realtime() bool {
	return r.realtime
}
