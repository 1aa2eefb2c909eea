package system

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tween"
	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/interp"
)

var ErrNoTransform = errors.New("tween: entity has no transform")

// MoveTo tweens an entity's world position to target over duration
// seconds. The current position is the implicit start value. The run is
// stepped by the TweenSystem and stops silently if the entity is
// destroyed.
func MoveTo(w *ecs.World, e ecs.Entity, target cp.Vector, duration float64, opts ...tween.Option) error {
	if !ecs.Has(w, e, component.TransformComponent) {
		return ErrNoTransform
	}
	start := WorldPosition(w, e)
	run, err := tween.NewRun(duration, interp.Vec2Val(start), interp.Vec2Val(target), nil, opts...)
	if err != nil {
		return err
	}
	return attach(w, e, component.TargetPosition, run)
}

// MoveLocalTo tweens an entity's parent-relative position.
func MoveLocalTo(w *ecs.World, e ecs.Entity, target cp.Vector, duration float64, opts ...tween.Option) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return ErrNoTransform
	}
	run, err := tween.NewRun(duration, interp.Vec2Val(t.Position), interp.Vec2Val(target), nil, opts...)
	if err != nil {
		return err
	}
	return attach(w, e, component.TargetLocalPosition, run)
}

// RotateTo tweens an entity's world rotation to target degrees along
// the shortest arc.
func RotateTo(w *ecs.World, e ecs.Entity, targetDegrees, duration float64, opts ...tween.Option) error {
	if !ecs.Has(w, e, component.TransformComponent) {
		return ErrNoTransform
	}
	start := WorldRotation(w, e)
	run, err := tween.NewRun(duration, interp.FloatVal(start), interp.FloatVal(start+shortestArc(start, targetDegrees)), nil, opts...)
	if err != nil {
		return err
	}
	return attach(w, e, component.TargetRotation, run)
}

// RotateLocalTo tweens an entity's parent-relative rotation along the
// shortest arc.
func RotateLocalTo(w *ecs.World, e ecs.Entity, targetDegrees, duration float64, opts ...tween.Option) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return ErrNoTransform
	}
	run, err := tween.NewRun(duration, interp.FloatVal(t.Rotation), interp.FloatVal(t.Rotation+shortestArc(t.Rotation, targetDegrees)), nil, opts...)
	if err != nil {
		return err
	}
	return attach(w, e, component.TargetLocalRotation, run)
}

// ScaleTo tweens an entity's local scale.
func ScaleTo(w *ecs.World, e ecs.Entity, target cp.Vector, duration float64, opts ...tween.Option) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return ErrNoTransform
	}
	run, err := tween.NewRun(duration, interp.Vec2Val(t.Scale), interp.Vec2Val(target), nil, opts...)
	if err != nil {
		return err
	}
	return attach(w, e, component.TargetScale, run)
}

func attach(w *ecs.World, e ecs.Entity, target component.Target, run *tween.Run) error {
	tw, _ := ecs.Get(w, e, component.TweenComponent)
	tw.Runs = append(tw.Runs, component.PropertyRun{Target: target, Run: run})
	return ecs.Add(w, e, component.TweenComponent, tw)
}

// shortestArc returns the signed degree delta from start to target,
// normalized into (-180, 180]. It is the scalar analogue of spherical
// interpolation: the tween never takes the long way around.
func shortestArc(start, target float64) float64 {
	d := math.Mod(target-start, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}
