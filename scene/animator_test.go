package scene

import (
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/clipcap"
)

func TestPlaneAnimator_Sweep(t *testing.T) {
	base := clipcap.NewPlane(clipcap.V3(0, 1, 0), clipcap.V3(0, 0, 0))
	a := NewPlaneAnimator(base, 0.5, 4*time.Second)

	// t = 0: at the base pose.
	if got := a.At(0); got != base {
		t.Errorf("At(0) = %v, want base", got)
	}
	// Quarter period: full positive amplitude along the normal.
	p := a.At(time.Second)
	if !aboutEq(p.Point.Y, 0.5) {
		t.Errorf("At(T/4) point y = %v, want 0.5", p.Point.Y)
	}
	// Three quarters: full negative amplitude.
	p = a.At(3 * time.Second)
	if !aboutEq(p.Point.Y, -0.5) {
		t.Errorf("At(3T/4) point y = %v, want -0.5", p.Point.Y)
	}
	// One full period wraps back to the base pose.
	p = a.At(4 * time.Second)
	if !aboutEq(p.Point.Y, 0) {
		t.Errorf("At(T) point y = %v, want 0", p.Point.Y)
	}
}

func TestPlaneAnimator_ZeroPeriod(t *testing.T) {
	base := clipcap.NewPlane(clipcap.V3(0, 1, 0), clipcap.V3(0, 0.3, 0))
	a := NewPlaneAnimator(base, 1, 0)
	if got := a.At(5 * time.Second); got != base {
		t.Errorf("zero period At = %v, want base", got)
	}
}

func TestPlaneAnimator_ExternalPose(t *testing.T) {
	base := clipcap.NewPlane(clipcap.V3(0, 1, 0), clipcap.V3(0, 0, 0))
	a := NewPlaneAnimator(base, 0.5, 4*time.Second)

	tracked := clipcap.NewPlane(clipcap.V3(1, 0, 0), clipcap.V3(0.7, 0, 0))
	a.SetPose(tracked)
	if got := a.At(time.Second); got != tracked {
		t.Errorf("At with pose = %v, want tracked pose", got)
	}

	a.ClearPose()
	if got := a.At(time.Second); got == tracked {
		t.Error("ClearPose did not return control to the sweep")
	}
}

func TestPlaneAnimator_Update(t *testing.T) {
	base := clipcap.NewPlane(clipcap.V3(0, 1, 0), clipcap.V3(0, 0, 0))
	a := NewPlaneAnimator(base, 0.5, 4*time.Second)

	eff, err := clipcap.NewEffect(clipcap.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	a.Update(eff, time.Second)
	if got := eff.Config().Plane.Point.Y; !aboutEq(got, 0.5) {
		t.Errorf("effect plane y after Update = %v, want 0.5", got)
	}
}

func aboutEq(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}
