package clipcap

import "github.com/chewxy/math32"

// Camera defines the viewpoint for a frame.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3

	// FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32
}

// DefaultCamera returns a camera at +Z looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Eye:    V3(0, 0, 3),
		Target: V3(0, 0, 0),
		Up:     V3(0, 1, 0),
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the world-to-view matrix.
func (c Camera) View() Mat4 {
	return LookAt(c.Eye, c.Target, c.Up)
}

// Projection returns the view-to-clip matrix for the given aspect
// ratio (width / height).
func (c Camera) Projection(aspect float32) Mat4 {
	return Perspective(c.FOV*math32.Pi/180, aspect, c.Near, c.Far)
}

// ViewProjection returns the combined world-to-clip matrix.
func (c Camera) ViewProjection(aspect float32) Mat4 {
	return c.Projection(aspect).Mul(c.View())
}
