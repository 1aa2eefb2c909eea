package tween

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tween/ease"
	"github.com/milk9111/tween/interp"
)

func TestRunStepsToExactEnd(t *testing.T) {
	var got []float64
	run, err := NewRun(1.0, interp.FloatVal(0), interp.FloatVal(10), func(v interp.Value) {
		got = append(got, v.Float())
	})
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	for i := 0; i < 4; i++ {
		status, err := run.Step(0.25)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if i < 3 && status != Continue {
			t.Fatalf("Step %d: expected Continue", i)
		}
		if i == 3 && status != Done {
			t.Fatalf("final Step: expected Done")
		}
	}

	want := []float64{2.5, 5.0, 7.5, 10.0}
	if len(got) != len(want) {
		t.Fatalf("expected %d updates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("update %d = %g, want %g", i, got[i], want[i])
		}
	}
	// The final step delivers the exact end value, not an interpolated
	// approximation.
	if got[3] != 10.0 {
		t.Fatalf("final update = %v, want exactly 10.0", got[3])
	}
}

func TestRunCompletionFiresOnceAfterFinalUpdate(t *testing.T) {
	var events []string
	run, err := NewRun(0.5, interp.FloatVal(0), interp.FloatVal(1),
		func(v interp.Value) { events = append(events, "update") },
	)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	run.onComplete = func() { events = append(events, "complete") }

	for i := 0; i < 3; i++ {
		if _, err := run.Step(0.25); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	// 0.25 then 0.5 >= duration: one mid update, one final update, one
	// completion, then nothing on the extra step.
	wantAll := []string{"update", "update", "complete"}
	if len(events) != len(wantAll) {
		t.Fatalf("events = %v, want %v", events, wantAll)
	}
	for i := range wantAll {
		if events[i] != wantAll[i] {
			t.Fatalf("events = %v, want %v", events, wantAll)
		}
	}
	if !run.Finished() {
		t.Fatalf("run should be finished")
	}
}

func TestRunConstructionErrors(t *testing.T) {
	updates := 0
	noop := func(interp.Value) { updates++ }

	cases := []struct {
		name string
		fn   func() (*Run, error)
		want error
	}{
		{"zero_duration", func() (*Run, error) {
			return NewRun(0, interp.FloatVal(0), interp.FloatVal(1), noop)
		}, ErrNonPositiveDuration},
		{"negative_duration", func() (*Run, error) {
			return NewRun(-1, interp.FloatVal(0), interp.FloatVal(1), noop)
		}, ErrNonPositiveDuration},
		{"quat_in_value_run", func() (*Run, error) {
			return NewRun(1, interp.QuatVal(mgl64.QuatIdent()), interp.QuatVal(mgl64.QuatIdent()), noop)
		}, interp.ErrUnsupportedKind},
		{"vec2_in_rotation_run", func() (*Run, error) {
			return NewRotationRun(1, interp.Vec2Val(cp.Vector{}), interp.Vec2Val(cp.Vector{}), noop)
		}, interp.ErrUnsupportedKind},
		{"kind_mismatch", func() (*Run, error) {
			return NewRun(1, interp.IntVal(0), interp.FloatVal(1), noop)
		}, interp.ErrKindMismatch},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			run, err := c.fn()
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if run != nil {
				t.Fatalf("expected nil run on error")
			}
			if updates != 0 {
				t.Fatalf("update callback fired before validation")
			}
		})
	}
}

func TestRunInvalidModeAbortsWithoutCallbacks(t *testing.T) {
	updates, completions := 0, 0
	run, err := NewRun(1, interp.FloatVal(0), interp.FloatVal(1),
		func(interp.Value) { updates++ },
		WithEase(ease.Mode("bogus"), 2),
	)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	run.onComplete = func() { completions++ }

	status, err := run.Step(0.1)
	if !errors.Is(err, ease.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if status != Done {
		t.Fatalf("aborted run should report Done")
	}
	if updates != 0 || completions != 0 {
		t.Fatalf("callbacks fired on aborted run: updates=%d completions=%d", updates, completions)
	}

	// A dead run stays dead.
	if status, err := run.Step(0.1); status != Done || err != nil {
		t.Fatalf("stepping a finished run: status=%v err=%v", status, err)
	}
}

func TestRunValueAccessorWithNilUpdate(t *testing.T) {
	run, err := NewRun(1, interp.FloatVal(0), interp.FloatVal(8), nil)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if got := run.Value().Float(); got != 0 {
		t.Fatalf("initial value = %g, want start 0", got)
	}

	if _, err := run.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := run.Value().Float(); math.Abs(got-4) > 1e-9 {
		t.Fatalf("value after half = %g, want 4", got)
	}

	if _, err := run.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := run.Value().Float(); got != 8 {
		t.Fatalf("final value = %g, want exactly 8", got)
	}
}

func TestRunEasedProgress(t *testing.T) {
	var last float64
	run, err := NewRun(1, interp.FloatVal(0), interp.FloatVal(100),
		func(v interp.Value) { last = v.Float() },
		WithEase(ease.EaseIn, 2),
	)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if _, err := run.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// ease-in with factor 2 at half progress is 0.25.
	if math.Abs(last-25) > 1e-9 {
		t.Fatalf("eased value = %g, want 25", last)
	}
}

func TestRotationRunSlerps(t *testing.T) {
	start := mgl64.QuatIdent()
	end := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})

	var mid mgl64.Quat
	run, err := NewRotationRun(1, interp.QuatVal(start), interp.QuatVal(end),
		func(v interp.Value) { mid = v.Quat() })
	if err != nil {
		t.Fatalf("NewRotationRun: %v", err)
	}
	if _, err := run.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}

	wantAngle := math.Pi / 4
	d := start.Dot(mid)
	if d < 0 {
		d = -d
	}
	if d > 1 {
		d = 1
	}
	if got := 2 * math.Acos(d); math.Abs(got-wantAngle) > 1e-9 {
		t.Fatalf("midpoint angle = %g, want %g", got, wantAngle)
	}
}

func TestCustomCurveOverridesMode(t *testing.T) {
	var last float64
	run, err := NewRun(1, interp.FloatVal(0), interp.FloatVal(10),
		func(v interp.Value) { last = v.Float() },
		WithCurve(func(t float64) float64 { return t * t }),
	)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if _, err := run.Step(0.5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if math.Abs(last-2.5) > 1e-9 {
		t.Fatalf("curved value = %g, want 2.5", last)
	}
}
