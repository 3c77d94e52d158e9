package culling

import (
	"rendergov/internal/scene"
)

// Culler decides per-object visibility against a camera's view frustum.
// Rebuild must be called once per tick before IsVisible or Apply; the
// extracted planes are reused for every object tested that tick.
type Culler struct {
	frustum Frustum
}

// NewCuller returns a culler with no frustum; everything is visible until
// the first Rebuild.
func NewCuller() *Culler {
	return &Culler{}
}

// Rebuild extracts the frustum planes from the camera's current transforms.
func (c *Culler) Rebuild(cam *scene.Camera) {
	c.frustum = ExtractFrustum(cam.ViewProjection())
}

// IsVisible tests an object's world-space bounding sphere against the
// frustum. Objects without a bounding volume fail open: content a caller
// forgot to prepare is rendered, never silently dropped.
func (c *Culler) IsVisible(obj *scene.Object) bool {
	if obj.Bounds == nil {
		return true
	}
	s := obj.Bounds.Transformed(&obj.Transform)
	return c.frustum.ContainsSphere(s.Center, s.Radius)
}

// Apply rebuilds the frustum and writes each object's Visible flag.
// Returns the number of visible objects.
func (c *Culler) Apply(objs []*scene.Object, cam *scene.Camera) int {
	c.Rebuild(cam)
	visible := 0
	for _, obj := range objs {
		obj.Visible = c.IsVisible(obj)
		if obj.Visible {
			visible++
		}
	}
	return visible
}
