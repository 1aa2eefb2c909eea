package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrUnsupportedKind = errors.New("interp: unsupported value kind")
	ErrKindMismatch    = errors.New("interp: start and end kinds differ")
)

// Lerp linearly interpolates between start and end at progress t,
// component-wise. Integer kinds round each component half away from
// zero after interpolating, so fractional progress still yields
// integral values. Rotation kinds are not linear-space; use Slerp.
func Lerp(start, end Value, t float64) (Value, error) {
	if start.kind != end.kind {
		return Value{}, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, start.kind, end.kind)
	}

	switch start.kind {
	case KindFloat, KindVec2, KindVec3, KindColor:
		return lerpComponents(start, end, t, false), nil
	case KindInt, KindIVec2, KindIVec3:
		return lerpComponents(start, end, t, true), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, start.kind)
}

// Slerp spherically interpolates between two rotations at progress t.
// Quaternions travel the shortest arc at constant angular velocity;
// 3D vectors rotate through the angle between them with linearly
// interpolated magnitude. Integer vector kinds round the spherical
// result component-wise. Non-rotation kinds are rejected.
func Slerp(start, end Value, t float64) (Value, error) {
	if start.kind != end.kind {
		return Value{}, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, start.kind, end.kind)
	}

	switch start.kind {
	case KindQuat:
		q := mgl64.QuatSlerp(start.Quat(), end.Quat(), t)
		return QuatVal(q), nil
	case KindVec3:
		return Vec3Val(slerpVec3(start.Vec3(), end.Vec3(), t)), nil
	case KindIVec3:
		v := slerpVec3(start.Vec3(), end.Vec3(), t)
		return IVec3Val(IVec3{
			X: int(math.Round(v[0])),
			Y: int(math.Round(v[1])),
			Z: int(math.Round(v[2])),
		}), nil
	}
	return Value{}, fmt.Errorf("%w: %s (not a rotation kind)", ErrUnsupportedKind, start.kind)
}

func lerpComponents(start, end Value, t float64, round bool) Value {
	out := Value{kind: start.kind}
	for i := range start.c {
		v := start.c[i] + (end.c[i]-start.c[i])*t
		if round {
			v = math.Round(v)
		}
		out.c[i] = v
	}
	return out
}

// slerpVec3 rotates a toward b through the angle between them, lerping
// the magnitudes. Degenerate inputs (zero length, near-parallel) fall
// back to linear interpolation.
func slerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return a.Add(b.Sub(a).Mul(t))
	}

	dot := a.Dot(b) / (la * lb)
	dot = math.Max(-1, math.Min(1, dot))
	omega := math.Acos(dot)
	if omega < 1e-3 || math.Abs(math.Pi-omega) < 1e-3 {
		// Near-parallel or antiparallel: the arc is degenerate.
		return a.Add(b.Sub(a).Mul(t))
	}

	sin := math.Sin(omega)
	dir := a.Normalize().Mul(math.Sin((1-t)*omega) / sin).
		Add(b.Normalize().Mul(math.Sin(t*omega) / sin))
	return dir.Mul(la + (lb-la)*t)
}
