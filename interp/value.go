// Package interp holds the closed set of tweenable value kinds and the
// interpolation dispatch over them.
package interp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Kind tags a Value with its runtime type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindVec2
	KindIVec2
	KindVec3
	KindIVec3
	KindColor
	KindQuat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindIVec2:
		return "ivec2"
	case KindVec3:
		return "vec3"
	case KindIVec3:
		return "ivec3"
	case KindColor:
		return "color"
	case KindQuat:
		return "quat"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IVec2 is an integer-valued 2D vector (tile coordinates, pixel grids).
type IVec2 struct {
	X, Y int
}

// IVec3 is an integer-valued 3D vector.
type IVec3 struct {
	X, Y, Z int
}

// Color is an RGBA color with float64 channels. Channels are tweened
// component-wise and are not clamped; callers decide the color space.
type Color struct {
	R, G, B, A float64
}

// Value is a tagged variant over the tweenable kinds. Components are
// stored as float64 regardless of kind; integer kinds always hold
// integral components, which the interpolators guarantee by rounding.
type Value struct {
	kind Kind
	c    [4]float64
}

func IntVal(i int) Value {
	return Value{kind: KindInt, c: [4]float64{float64(i)}}
}

func FloatVal(f float64) Value {
	return Value{kind: KindFloat, c: [4]float64{f}}
}

func Vec2Val(v cp.Vector) Value {
	return Value{kind: KindVec2, c: [4]float64{v.X, v.Y}}
}

func IVec2Val(v IVec2) Value {
	return Value{kind: KindIVec2, c: [4]float64{float64(v.X), float64(v.Y)}}
}

func Vec3Val(v mgl64.Vec3) Value {
	return Value{kind: KindVec3, c: [4]float64{v[0], v[1], v[2]}}
}

func IVec3Val(v IVec3) Value {
	return Value{kind: KindIVec3, c: [4]float64{float64(v.X), float64(v.Y), float64(v.Z)}}
}

func ColorVal(c Color) Value {
	return Value{kind: KindColor, c: [4]float64{c.R, c.G, c.B, c.A}}
}

func QuatVal(q mgl64.Quat) Value {
	return Value{kind: KindQuat, c: [4]float64{q.W, q.V[0], q.V[1], q.V[2]}}
}

// Kind returns the tag; the zero Value has KindInvalid.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int() int {
	return int(v.c[0])
}

func (v Value) Float() float64 {
	return v.c[0]
}

func (v Value) Vec2() cp.Vector {
	return cp.Vector{X: v.c[0], Y: v.c[1]}
}

func (v Value) IVec2() IVec2 {
	return IVec2{X: int(v.c[0]), Y: int(v.c[1])}
}

func (v Value) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.c[0], v.c[1], v.c[2]}
}

func (v Value) IVec3() IVec3 {
	return IVec3{X: int(v.c[0]), Y: int(v.c[1]), Z: int(v.c[2])}
}

func (v Value) Color() Color {
	return Color{R: v.c[0], G: v.c[1], B: v.c[2], A: v.c[3]}
}

func (v Value) Quat() mgl64.Quat {
	return mgl64.Quat{W: v.c[0], V: mgl64.Vec3{v.c[1], v.c[2], v.c[3]}}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", v.Int())
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.Float())
	case KindVec2:
		return fmt.Sprintf("vec2(%g, %g)", v.c[0], v.c[1])
	case KindIVec2:
		return fmt.Sprintf("ivec2(%d, %d)", int(v.c[0]), int(v.c[1]))
	case KindVec3:
		return fmt.Sprintf("vec3(%g, %g, %g)", v.c[0], v.c[1], v.c[2])
	case KindIVec3:
		return fmt.Sprintf("ivec3(%d, %d, %d)", int(v.c[0]), int(v.c[1]), int(v.c[2]))
	case KindColor:
		return fmt.Sprintf("color(%g, %g, %g, %g)", v.c[0], v.c[1], v.c[2], v.c[3])
	case KindQuat:
		return fmt.Sprintf("quat(%g; %g, %g, %g)", v.c[0], v.c[1], v.c[2], v.c[3])
	}
	return "invalid"
}
