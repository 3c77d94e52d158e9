package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices.
type Camera struct {
	FOV         float32 // degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// NewCamera creates a camera with the defaults used by the demo renderer.
func NewCamera(width, height int) *Camera {
	return &Camera{
		FOV:         60.0,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Position:    mgl32.Vec3{0, 0, 10},
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ViewProjection returns projection * view, the clip matrix frustum planes
// are extracted from.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// SetAspect updates the aspect ratio on window resize.
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
