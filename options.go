package tween

import "github.com/milk9111/tween/ease"

// Option configures a run at construction. Defaults are linear easing
// with factor 1.
type Option func(*Run)

// WithEase selects the easing mode and steepness factor. The mode is
// validated when the run steps, not here.
func WithEase(mode ease.Mode, factor float64) Option {
	return func(r *Run) {
		r.mode = mode
		r.factor = factor
		r.curve = nil
	}
}

// WithCurve uses a custom curve in place of a mode/factor pair, e.g. a
// cubic Bézier or a scripted curve.
func WithCurve(c ease.Curve) Option {
	return func(r *Run) {
		r.curve = c
	}
}

func withComplete(fn func()) Option {
	return func(r *Run) {
		r.onComplete = fn
	}
}

func withRealtime() Option {
	return func(r *Run) {
		r.realtime = true
	}
}
