package ease

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestLinearIsIdentity(t *testing.T) {
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got, err := Ease(Linear, 7.3, tt)
		if err != nil {
			t.Fatalf("Ease(Linear, _, %g): %v", tt, err)
		}
		if got != tt {
			t.Fatalf("Ease(Linear, _, %g) = %g, want identity", tt, got)
		}
	}
}

func TestFactorOneDegeneratesToLinear(t *testing.T) {
	modes := []Mode{Linear, EaseIn, EaseOut, EaseInOut}
	for _, m := range modes {
		t.Run(string(m), func(t *testing.T) {
			for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
				got, err := Ease(m, 1, tt)
				if err != nil {
					t.Fatalf("Ease(%s, 1, %g): %v", m, tt, err)
				}
				if !almostEqual(got, tt) {
					t.Fatalf("Ease(%s, 1, %g) = %g, want %g", m, tt, got, tt)
				}
			}
		})
	}
}

func TestEndpointsFixed(t *testing.T) {
	modes := []Mode{Linear, EaseIn, EaseOut, EaseInOut}
	factors := []float64{0.5, 1, 2, 3, 10}
	for _, m := range modes {
		for _, f := range factors {
			got, err := Ease(m, f, 0)
			if err != nil {
				t.Fatalf("Ease(%s, %g, 0): %v", m, f, err)
			}
			if !almostEqual(got, 0) {
				t.Fatalf("Ease(%s, %g, 0) = %g, want 0", m, f, got)
			}

			got, err = Ease(m, f, 1)
			if err != nil {
				t.Fatalf("Ease(%s, %g, 1): %v", m, f, err)
			}
			if !almostEqual(got, 1) {
				t.Fatalf("Ease(%s, %g, 1) = %g, want 1", m, f, got)
			}
		}
	}
}

func TestEaseCurveValues(t *testing.T) {
	cases := []struct {
		name   string
		mode   Mode
		factor float64
		t      float64
		want   float64
	}{
		{"ease_in_quad_half", EaseIn, 2, 0.5, 0.25},
		{"ease_out_quad_half", EaseOut, 2, 0.5, 0.75},
		{"ease_in_out_quad_quarter", EaseInOut, 2, 0.25, 0.125},
		// Second branch evaluates 1 - 0.5*(1-2t+1)^f.
		{"ease_in_out_quad_three_quarters", EaseInOut, 2, 0.75, 0.875},
		{"ease_in_cubic_half", EaseIn, 3, 0.5, 0.125},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Ease(c.mode, c.factor, c.t)
			if err != nil {
				t.Fatalf("Ease(%s, %g, %g): %v", c.mode, c.factor, c.t, err)
			}
			if !almostEqual(got, c.want) {
				t.Fatalf("Ease(%s, %g, %g) = %g, want %g", c.mode, c.factor, c.t, got, c.want)
			}
		})
	}
}

func TestInvalidMode(t *testing.T) {
	if _, err := Ease(Mode("bounce"), 2, 0.5); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := ParseMode("elastic"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode from ParseMode, got %v", err)
	}

	m, err := ParseMode("ease-in-out")
	if err != nil {
		t.Fatalf("ParseMode(ease-in-out): %v", err)
	}
	if m != EaseInOut {
		t.Fatalf("ParseMode(ease-in-out) = %s", m)
	}
}

func TestCubicBezier(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		c := CubicBezier(0.65, 0, 0.35, 1)
		if got := c(0); got != 0 {
			t.Fatalf("curve(0) = %g, want 0", got)
		}
		if got := c(1); got != 1 {
			t.Fatalf("curve(1) = %g, want 1", got)
		}
	})

	t.Run("diagonal_controls_are_linear", func(t *testing.T) {
		c := CubicBezier(0.25, 0.25, 0.75, 0.75)
		for _, tt := range []float64{0.1, 0.5, 0.9} {
			if got := c(tt); math.Abs(got-tt) > 1e-4 {
				t.Fatalf("curve(%g) = %g, want ~%g", tt, got, tt)
			}
		}
	})

	t.Run("symmetric_midpoint", func(t *testing.T) {
		c := CubicBezier(0.65, 0, 0.35, 1)
		if got := c(0.5); math.Abs(got-0.5) > 1e-4 {
			t.Fatalf("curve(0.5) = %g, want ~0.5", got)
		}
	})
}
