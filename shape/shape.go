// Package shape generates the triangle meshes used by the demo and
// the renderer tests. All shapes are closed solids with outward
// normals and counter-clockwise front-face winding.
package shape

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clipcap"
)

// Sphere builds a UV sphere of the given radius centered at the
// origin. segments is the longitudinal resolution, rings the
// latitudinal one; both are clamped to a minimum of 3.
func Sphere(radius float32, segments, rings int) *clipcap.Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 3 {
		rings = 3
	}

	m := &clipcap.Mesh{}
	for i := 0; i <= rings; i++ {
		phi := math32.Pi * float32(i) / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)
		for j := 0; j <= segments; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)
			n := clipcap.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			m.Vertices = append(m.Vertices, clipcap.Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				U:        float32(j) / float32(segments),
				V:        float32(i) / float32(rings),
			})
		}
	}

	stride := uint32(segments + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			// Two CCW triangles per quad (degenerate at the poles
			// are harmless: zero-area triangles rasterize nothing).
			m.Indices = append(m.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return m
}

// Box builds an axis-aligned box of the given extents centered at the
// origin, as six independent quad faces so each face keeps a flat
// normal.
func Box(sx, sy, sz float32) *clipcap.Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2
	m := &clipcap.Mesh{}

	// Each face: corner origin, edge vectors u and v with
	// u x v = outward normal.
	faces := []struct {
		origin, u, v clipcap.Vec3
	}{
		{clipcap.V3(-hx, -hy, hz), clipcap.V3(2*hx, 0, 0), clipcap.V3(0, 2*hy, 0)},   // +Z
		{clipcap.V3(hx, -hy, -hz), clipcap.V3(-2*hx, 0, 0), clipcap.V3(0, 2*hy, 0)},  // -Z
		{clipcap.V3(hx, -hy, hz), clipcap.V3(0, 0, -2*hz), clipcap.V3(0, 2*hy, 0)},   // +X
		{clipcap.V3(-hx, -hy, -hz), clipcap.V3(0, 0, 2*hz), clipcap.V3(0, 2*hy, 0)},  // -X
		{clipcap.V3(-hx, hy, hz), clipcap.V3(2*hx, 0, 0), clipcap.V3(0, 0, -2*hz)},   // +Y
		{clipcap.V3(-hx, -hy, -hz), clipcap.V3(2*hx, 0, 0), clipcap.V3(0, 0, 2*hz)},  // -Y
	}

	for _, f := range faces {
		n := f.u.Cross(f.v).Normalize()
		base := uint32(len(m.Vertices))
		corners := []clipcap.Vec3{
			f.origin,
			f.origin.Add(f.u),
			f.origin.Add(f.u).Add(f.v),
			f.origin.Add(f.v),
		}
		uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		for i, c := range corners {
			m.Vertices = append(m.Vertices, clipcap.Vertex{
				Position: c,
				Normal:   n,
				U:        uvs[i][0],
				V:        uvs[i][1],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// Quad builds a single two-sided-looking quad in the XZ plane facing
// +Y, useful as a ground plane.
func Quad(sx, sz float32) *clipcap.Mesh {
	hx, hz := sx/2, sz/2
	n := clipcap.V3(0, 1, 0)
	return &clipcap.Mesh{
		Vertices: []clipcap.Vertex{
			{Position: clipcap.V3(-hx, 0, -hz), Normal: n, U: 0, V: 0},
			{Position: clipcap.V3(-hx, 0, hz), Normal: n, U: 0, V: 1},
			{Position: clipcap.V3(hx, 0, hz), Normal: n, U: 1, V: 1},
			{Position: clipcap.V3(hx, 0, -hz), Normal: n, U: 1, V: 0},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
