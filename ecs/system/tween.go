// Package system contains the per-frame systems and entity helpers
// that drive tweens inside an ECS world.
package system

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tween"
	"github.com/milk9111/tween/clock"
	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/interp"
)

// TweenSystem steps every entity's property runs once per frame and
// writes the results into its Transform. Runs on destroyed entities are
// dropped with their components and never step again.
type TweenSystem struct {
	clock *clock.Clock
}

func NewTweenSystem(c *clock.Clock) *TweenSystem {
	if c == nil {
		c = clock.New()
	}
	return &TweenSystem{clock: c}
}

// Clock returns the system's time source so the game loop can tick it.
func (s *TweenSystem) Clock() *clock.Clock {
	return s.clock
}

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	delta := s.clock.Delta()
	realDelta := s.clock.RealDelta()

	var emptied []ecs.Entity
	ecs.ForEach(w, component.TweenComponent, func(e ecs.Entity, tw *component.Tween) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			tw.Runs = nil
			emptied = append(emptied, e)
			return
		}

		kept := tw.Runs[:0]
		for _, pr := range tw.Runs {
			d := delta
			if pr.Run.Realtime() {
				d = realDelta
			}

			status, err := pr.Run.Step(d)
			if err != nil {
				fmt.Printf("tween: entity=%s target=%s step error: %v\n", e, pr.Target, err)
				continue
			}

			applyTarget(w, &t, pr.Target, pr.Run.Value())
			if status == tween.Continue {
				kept = append(kept, pr)
			}
		}
		tw.Runs = kept

		_ = ecs.Add(w, e, component.TransformComponent, t)
		if len(tw.Runs) == 0 {
			emptied = append(emptied, e)
		}
	})

	for _, e := range emptied {
		ecs.Remove(w, e, component.TweenComponent)
	}
}

func applyTarget(w *ecs.World, t *component.Transform, target component.Target, v interp.Value) {
	switch target {
	case component.TargetPosition:
		t.Position = v.Vec2()
		if p := ecs.Entity(t.Parent); p.Valid() {
			t.Position = t.Position.Sub(WorldPosition(w, p))
		}
	case component.TargetLocalPosition:
		t.Position = v.Vec2()
	case component.TargetRotation:
		r := v.Float()
		if p := ecs.Entity(t.Parent); p.Valid() {
			r -= WorldRotation(w, p)
		}
		t.Rotation = normalizeDegrees(r)
	case component.TargetLocalRotation:
		t.Rotation = normalizeDegrees(v.Float())
	case component.TargetScale:
		t.Scale = v.Vec2()
	}
}

// normalizeDegrees wraps an angle into [0, 360). Shortest-arc runs can
// pass through values outside the range mid-flight.
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// WorldPosition resolves an entity's world-space position by walking
// the parent chain. Entities without a transform sit at the origin.
func WorldPosition(w *ecs.World, e ecs.Entity) cp.Vector {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return cp.Vector{}
	}
	pos := t.Position
	if p := ecs.Entity(t.Parent); p.Valid() {
		pos = pos.Add(WorldPosition(w, p))
	}
	return pos
}

// WorldRotation resolves an entity's world-space rotation in degrees.
func WorldRotation(w *ecs.World, e ecs.Entity) float64 {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return 0
	}
	rot := t.Rotation
	if p := ecs.Entity(t.Parent); p.Valid() {
		rot += WorldRotation(w, p)
	}
	return rot
}
