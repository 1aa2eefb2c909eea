package component

import "github.com/jakecoffman/cp"

// Transform places an entity in the scene. Position, Rotation, and
// Scale are local to Parent when Parent is set, world-space otherwise.
// Rotation is in degrees.
type Transform struct {
	Position cp.Vector
	Rotation float64
	Scale    cp.Vector
	Parent   uint64 // ecs.Entity is uint64; zero means no parent
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: cp.Vector{X: 1, Y: 1}}
}

var TransformComponent = NewComponent[Transform]()
