package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds mutable placement state for a renderable.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied XYZ
	Scale    mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	*t = IdentityTransform()
}

// Model builds the world matrix: translate * rotX * rotY * rotZ * scale.
func (t *Transform) Model() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	m = m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
	return m
}

// MaxScale returns the largest scale component, used to inflate bounding
// radii under non-uniform scaling.
func (t *Transform) MaxScale() float32 {
	s := t.Scale.X()
	if t.Scale.Y() > s {
		s = t.Scale.Y()
	}
	if t.Scale.Z() > s {
		s = t.Scale.Z()
	}
	return s
}
