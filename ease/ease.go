// Package ease maps normalized progress through a curve shape so tweens
// accelerate and decelerate instead of moving at constant speed.
package ease

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMode = errors.New("ease: invalid easing mode")

// Mode names one of the supported curve shapes. Factor controls the
// steepness of the non-linear modes; a factor of 1 degenerates every
// mode to linear.
type Mode string

const (
	Linear    Mode = "linear"
	EaseIn    Mode = "ease-in"
	EaseOut   Mode = "ease-out"
	EaseInOut Mode = "ease-in-out"
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case Linear, EaseIn, EaseOut, EaseInOut:
		return true
	}
	return false
}

// ParseMode converts a mode name (as it appears in def files) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Ease maps progress t in [0,1] to eased progress. All modes keep the
// endpoints fixed: Ease(m, f, 0) == 0 and Ease(m, f, 1) == 1.
func Ease(mode Mode, factor, t float64) (float64, error) {
	switch mode {
	case Linear:
		return t, nil
	case EaseIn:
		return math.Pow(t, factor), nil
	case EaseOut:
		return 1 - math.Pow(1-t, factor), nil
	case EaseInOut:
		if t < 0.5 {
			return 0.5 * math.Pow(2*t, factor), nil
		}
		// The second branch argument is 1-2t+1 rather than the folded
		// 2-2t form. Keep it as written; it is the curve callers expect.
		return 1 - 0.5*math.Pow(1-2*t+1, factor), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

// A Curve is a custom easing function over normalized progress. Curves
// built from defs or scripts are used in place of a Mode/factor pair.
type Curve func(t float64) float64
