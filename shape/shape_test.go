package shape

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/clipcap"
)

func TestSphere(t *testing.T) {
	const radius = 2.0
	m := Sphere(radius, 16, 12)

	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	if want := 16 * 12 * 2; m.TriangleCount() != want {
		t.Errorf("TriangleCount = %d, want %d", m.TriangleCount(), want)
	}

	for i, v := range m.Vertices {
		if r := v.Position.Length(); math32.Abs(r-radius) > 1e-4 {
			t.Fatalf("vertex %d at radius %v, want %v", i, r, radius)
		}
		if l := v.Normal.Length(); math32.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
		// Outward normal: aligned with the position direction.
		if v.Position.Dot(v.Normal) < 0 {
			t.Fatalf("vertex %d normal points inward", i)
		}
	}
}

func TestSphere_ClampsResolution(t *testing.T) {
	m := Sphere(1, 0, 1)
	if m.TriangleCount() != 3*3*2 {
		t.Errorf("TriangleCount = %d, want clamped 3x3 grid", m.TriangleCount())
	}
}

func TestBox(t *testing.T) {
	m := Box(2, 4, 6)
	if len(m.Vertices) != 24 {
		t.Errorf("vertex count = %d, want 24 (4 per face)", len(m.Vertices))
	}
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount = %d, want 12", m.TriangleCount())
	}

	for i, v := range m.Vertices {
		p := v.Position
		if math32.Abs(p.X) > 1+1e-5 || math32.Abs(p.Y) > 2+1e-5 || math32.Abs(p.Z) > 3+1e-5 {
			t.Fatalf("vertex %d at %v outside half extents", i, p)
		}
		// Face normals are axis-aligned and outward.
		if v.Position.Dot(v.Normal) <= 0 {
			t.Fatalf("vertex %d normal %v not outward at %v", i, v.Normal, p)
		}
	}
}

func TestQuad(t *testing.T) {
	m := Quad(4, 2)
	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2", m.TriangleCount())
	}
	for _, v := range m.Vertices {
		if v.Normal != clipcap.V3(0, 1, 0) {
			t.Errorf("quad normal = %v, want +Y", v.Normal)
		}
		if v.Position.Y != 0 {
			t.Errorf("quad vertex y = %v, want 0", v.Position.Y)
		}
		if math32.Abs(v.Position.X) != 2 || math32.Abs(v.Position.Z) != 1 {
			t.Errorf("quad corner %v not at half extents", v.Position)
		}
	}
}

// Winding check: every triangle of a closed shape should face away
// from the center, i.e. its geometric normal agrees with the average
// vertex normal.
func TestWindingIsCCW(t *testing.T) {
	for _, tt := range []struct {
		name string
		mesh *clipcap.Mesh
	}{
		{"sphere", Sphere(1, 12, 8)},
		{"box", Box(2, 2, 2)},
		{"quad", Quad(2, 2)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.mesh.TriangleCount(); i++ {
				a, b, c := tt.mesh.Triangle(i)
				geo := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
				if geo.Length() < 1e-7 {
					continue // degenerate (sphere poles)
				}
				avg := a.Normal.Add(b.Normal).Add(c.Normal)
				if geo.Dot(avg) <= 0 {
					t.Fatalf("triangle %d wound clockwise", i)
				}
			}
		})
	}
}
