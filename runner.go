package tween

import (
	"errors"

	"github.com/milk9111/tween/clock"
	"github.com/milk9111/tween/interp"
)

// Handle identifies a run owned by a Runner. The zero Handle is never
// issued.
type Handle uint64

// Runner owns active runs and steps them once per game tick. Runs are
// independent: they share no state and there is no ordering guarantee
// between them. Not safe for concurrent use; the game loop owns it,
// matching the single-threaded cooperative model of the host engine.
type Runner struct {
	clock  *clock.Clock
	nextID Handle
	runs   []runnerEntry

	// Callbacks may start or stop runs while Update walks r.runs.
	// While stepping, new runs land in staged and stops mark the
	// entry instead of splicing, so the slice being walked never
	// shifts; both are folded in after the loop.
	staged   []runnerEntry
	stepping bool
}

type runnerEntry struct {
	id  Handle
	run *Run
}

// NewRunner builds a runner around the given clock. A nil clock gets a
// fresh wall clock.
func NewRunner(c *clock.Clock) *Runner {
	if c == nil {
		c = clock.New()
	}
	return &Runner{clock: c}
}

// Clock returns the runner's time source.
func (r *Runner) Clock() *clock.Clock {
	return r.clock
}

// Len returns the number of runs in flight.
func (r *Runner) Len() int {
	n := len(r.staged)
	for _, e := range r.runs {
		if e.run != nil {
			n++
		}
	}
	return n
}

// Update ticks the clock and steps every run: scaled delta for normal
// runs, real delta for realtime runs. Finished runs are dropped. Step
// errors abort their run and are joined into the returned error; other
// runs keep going.
func (r *Runner) Update() error {
	r.clock.Tick()
	return r.step(r.clock.Delta(), r.clock.RealDelta())
}

func (r *Runner) step(delta, realDelta float64) error {
	var errs []error
	r.stepping = true
	for i := range r.runs {
		run := r.runs[i].run
		if run == nil { // stopped by an earlier callback this frame
			continue
		}
		d := delta
		if run.realtime {
			d = realDelta
		}
		status, err := run.Step(d)
		if err != nil {
			errs = append(errs, err)
			r.runs[i].run = nil
			continue
		}
		if status == Done {
			r.runs[i].run = nil
		}
	}
	r.stepping = false

	kept := r.runs[:0]
	for _, e := range r.runs {
		if e.run != nil {
			kept = append(kept, e)
		}
	}
	// Runs started from callbacks join now and see their first delta
	// on the next frame.
	r.runs = append(kept, r.staged...)
	r.staged = r.staged[:0]
	return errors.Join(errs...)
}

// Stop cancels a run without delivering the end value or the completion
// callback. Stopping an unknown or already finished handle is a no-op.
func (r *Runner) Stop(h Handle) {
	for i := range r.staged {
		if r.staged[i].id == h {
			r.staged = append(r.staged[:i], r.staged[i+1:]...)
			return
		}
	}
	for i := range r.runs {
		if r.runs[i].id == h {
			if r.stepping {
				r.runs[i].run = nil
				return
			}
			r.runs = append(r.runs[:i], r.runs[i+1:]...)
			return
		}
	}
}

// StopAll cancels every run in flight.
func (r *Runner) StopAll() {
	if r.stepping {
		for i := range r.runs {
			r.runs[i].run = nil
		}
	} else {
		r.runs = r.runs[:0]
	}
	r.staged = r.staged[:0]
}

func (r *Runner) add(run *Run) Handle {
	r.nextID++
	e := runnerEntry{id: r.nextID, run: run}
	if r.stepping {
		r.staged = append(r.staged, e)
	} else {
		r.runs = append(r.runs, e)
	}
	return r.nextID
}

func (r *Runner) start(duration float64, start, end interp.Value, onUpdate func(interp.Value), rotation bool, opts []Option) (Handle, error) {
	if onUpdate == nil {
		return 0, ErrNilUpdate
	}
	var (
		run *Run
		err error
	)
	if rotation {
		run, err = NewRotationRun(duration, start, end, onUpdate, opts...)
	} else {
		run, err = NewRun(duration, start, end, onUpdate, opts...)
	}
	if err != nil {
		return 0, err
	}
	return r.add(run), nil
}

// AnimateValue starts a linear-space animation from start to end over
// duration seconds, invoking onUpdate with each interpolated value.
// Easing defaults to linear; pass WithEase or WithCurve to change it.
func (r *Runner) AnimateValue(duration float64, start, end interp.Value, onUpdate func(interp.Value), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, false, opts)
}

// AnimateRotation starts a spherical animation between two rotations.
func (r *Runner) AnimateRotation(duration float64, start, end interp.Value, onUpdate func(interp.Value), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, true, opts)
}

// TweenValue is AnimateValue plus a completion callback, fired exactly
// once after the final update delivers the exact end value.
func (r *Runner) TweenValue(duration float64, start, end interp.Value, onUpdate func(interp.Value), onComplete func(), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, false, append(opts, withComplete(onComplete)))
}

// TweenValueRealtime is TweenValue driven by the unscaled delta, so it
// keeps moving while the game is slowed or frozen.
func (r *Runner) TweenValueRealtime(duration float64, start, end interp.Value, onUpdate func(interp.Value), onComplete func(), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, false, append(opts, withComplete(onComplete), withRealtime()))
}

// TweenRotation is AnimateRotation plus a completion callback.
func (r *Runner) TweenRotation(duration float64, start, end interp.Value, onUpdate func(interp.Value), onComplete func(), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, true, append(opts, withComplete(onComplete)))
}

// TweenRotationRealtime is TweenRotation driven by the unscaled delta.
func (r *Runner) TweenRotationRealtime(duration float64, start, end interp.Value, onUpdate func(interp.Value), onComplete func(), opts ...Option) (Handle, error) {
	return r.start(duration, start, end, onUpdate, true, append(opts, withComplete(onComplete), withRealtime()))
}
