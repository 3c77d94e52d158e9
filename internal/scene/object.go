package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BoundingSphere is the visibility volume attached to a renderable.
// Center is in object-local space; computed once from geometry and only
// recomputed when the geometry changes.
type BoundingSphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Transformed returns the sphere in world space under the given transform.
// Non-uniform scale inflates the radius by the largest axis, keeping the
// test conservative.
func (b BoundingSphere) Transformed(t *Transform) BoundingSphere {
	c := t.Model().Mul4x1(b.Center.Vec4(1))
	return BoundingSphere{
		Center: c.Vec3(),
		Radius: b.Radius * t.MaxScale(),
	}
}

// Object is a renderable instance managed by the performance controller.
// Bounds may be nil for objects that never provided geometry; the culler
// treats those as always visible.
type Object struct {
	Transform Transform
	Bounds    *BoundingSphere
	Visible   bool
}

// NewObject creates an object at the identity transform, visible by default.
func NewObject(bounds *BoundingSphere) *Object {
	return &Object{
		Transform: IdentityTransform(),
		Bounds:    bounds,
		Visible:   true,
	}
}

// DistanceTo returns the distance from the object's position to a point,
// used for LOD selection against the viewer position.
func (o *Object) DistanceTo(p mgl32.Vec3) float32 {
	return o.Transform.Position.Sub(p).Len()
}
