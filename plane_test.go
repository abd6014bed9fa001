package clipcap

import "testing"

func TestPlane_SignedDistance(t *testing.T) {
	pl := NewPlane(V3(0, 1, 0), V3(0, 2, 0))

	tests := []struct {
		name string
		p    Vec3
		want float32
	}{
		{"above", V3(0, 5, 0), 3},
		{"below", V3(10, 0, -4), -2},
		{"on plane", V3(7, 2, 7), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pl.SignedDistance(tt.p); !approxEq(got, tt.want) {
				t.Errorf("SignedDistance(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPlane_Clips(t *testing.T) {
	pl := NewPlane(V3(0, 1, 0), V3(0, 0, 0))
	if !pl.Clips(V3(0, 0.1, 0)) {
		t.Error("point on positive side should be clipped")
	}
	if pl.Clips(V3(0, -0.1, 0)) {
		t.Error("point on negative side should be kept")
	}
	// Boundary: a point exactly on the plane is kept.
	if pl.Clips(V3(3, 0, -1)) {
		t.Error("point on the plane should be kept")
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	pl := NewPlane(V3(0, 10, 0), V3(1, 2, 3))
	if !approxEq(pl.Normal.Length(), 1) {
		t.Errorf("normal length = %v, want 1", pl.Normal.Length())
	}
	if !approxEq(pl.SignedDistance(V3(0, 5, 0)), 3) {
		t.Errorf("distance after normalization = %v, want 3", pl.SignedDistance(V3(0, 5, 0)))
	}
}

func TestPlane_NonUnitNormalKeepsSign(t *testing.T) {
	// A hand-built non-unit normal scales distances but never flips
	// the clip decision.
	pl := Plane{Normal: V3(0, 3, 0), Point: V3(0, 1, 0)}
	if got := pl.SignedDistance(V3(0, 2, 0)); !approxEq(got, 3) {
		t.Errorf("scaled distance = %v, want 3", got)
	}
	if !pl.Clips(V3(0, 1.01, 0)) || pl.Clips(V3(0, 0.99, 0)) {
		t.Error("clip decision changed under a non-unit normal")
	}
}

func TestPlane_ZeroNormalClipsNothing(t *testing.T) {
	pl := Plane{Normal: V3(0, 0, 0), Point: V3(0, 0, 0)}
	for _, p := range []Vec3{V3(1, 1, 1), V3(-5, 2, 0), V3(0, 0, 0)} {
		if pl.Clips(p) {
			t.Errorf("zero-normal plane clipped %v", p)
		}
	}
}

func TestPlane_Offset(t *testing.T) {
	pl := NewPlane(V3(0, 1, 0), V3(0, 0, 0))
	moved := pl.Offset(2)
	if !vecApproxEq(moved.Point, V3(0, 2, 0)) {
		t.Errorf("Offset point = %v, want (0, 2, 0)", moved.Point)
	}
	if moved.Normal != pl.Normal {
		t.Error("Offset changed the normal")
	}
	// Offsetting by a negative distance moves against the normal.
	if got := pl.Offset(-1).Point; !vecApproxEq(got, V3(0, -1, 0)) {
		t.Errorf("Offset(-1) point = %v, want (0, -1, 0)", got)
	}
}
