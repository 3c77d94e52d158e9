package culling

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane is a half-space in Hesse normal form: ax + by + cz + d >= 0 inside.
type Plane struct {
	A, B, C, D float32
}

// Frustum is the six bounding half-spaces of a camera's view volume, in
// order: left, right, bottom, top, near, far.
type Frustum [6]Plane

// ExtractFrustum builds six planes from the combined projection*view matrix.
func ExtractFrustum(clip mgl32.Mat4) Frustum {
	// Matrix is in column-major order in mgl32
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	f := Frustum{}
	// Left  = m3 + m0
	f[0] = normalizePlane(Plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	// Right = m3 - m0
	f[1] = normalizePlane(Plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	// Bottom = m3 + m1
	f[2] = normalizePlane(Plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	// Top = m3 - m1
	f[3] = normalizePlane(Plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	// Near = m3 + m2
	f[4] = normalizePlane(Plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	// Far = m3 - m2
	f[5] = normalizePlane(Plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return f
}

func normalizePlane(p Plane) Plane {
	len := float32(math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C)))
	if len == 0 {
		return p
	}
	return Plane{p.A / len, p.B / len, p.C / len, p.D / len}
}

// ContainsSphere reports whether a world-space sphere intersects the view
// volume. Returns false iff the sphere lies entirely outside any one plane;
// conservative for spheres straddling a corner.
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for i := 0; i < 6; i++ {
		p := f[i]
		if p.A*center.X()+p.B*center.Y()+p.C*center.Z()+p.D < -radius {
			return false
		}
	}
	return true
}
