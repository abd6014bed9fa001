package clipcap

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-5

func approxEq(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func vecApproxEq(a, b Vec3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got, want := a.Add(b), V3(5, -3, 9); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3(-3, 7, -3); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Mul(2), V3(2, 4, 6); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got, want := a.Neg(), V3(-1, -2, -3); got != want {
		t.Errorf("Neg = %v, want %v", got, want)
	}
}

func TestVec3_DotCross(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vec3
		wantDot   float32
		wantCross Vec3
	}{
		{"unit axes", V3(1, 0, 0), V3(0, 1, 0), 0, V3(0, 0, 1)},
		{"parallel", V3(0, 2, 0), V3(0, 3, 0), 6, V3(0, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), 32, V3(-3, 6, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); !approxEq(got, tt.wantDot) {
				t.Errorf("Dot = %v, want %v", got, tt.wantDot)
			}
			if got := tt.a.Cross(tt.b); !vecApproxEq(got, tt.wantCross) {
				t.Errorf("Cross = %v, want %v", got, tt.wantCross)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := V3(3, 0, 4).Normalize()
	if !approxEq(v.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !vecApproxEq(v, V3(0.6, 0, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6, 0, 0.8)", v)
	}

	// The zero vector stays zero instead of producing NaN.
	if got := V3(0, 0, 0).Normalize(); got != V3(0, 0, 0) {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(2, 4, 6)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got, want := a.Lerp(b, 0.5), V3(1, 2, 3); !vecApproxEq(got, want) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestVec4_PerspectiveDivide(t *testing.T) {
	v := Vec4{X: 2, Y: 4, Z: 6, W: 2}
	if got, want := v.PerspectiveDivide(), V3(1, 2, 3); !vecApproxEq(got, want) {
		t.Errorf("PerspectiveDivide = %v, want %v", got, want)
	}
	if got, want := v.Vec3(), V3(2, 4, 6); got != want {
		t.Errorf("Vec3 = %v, want %v", got, want)
	}
}
