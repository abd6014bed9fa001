package scene

import (
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/clipcap"
)

// PlaneAnimator drives the clipping plane once per frame. Two drive
// modes exist, mirroring the usual host setups:
//
//   - time-based: the plane sweeps sinusoidally along its own normal
//     around a base pose (Plane and At);
//   - external: a tracked pose overrides the animation until cleared
//     (SetPose / ClearPose).
//
// PlaneAnimator is safe for concurrent use.
type PlaneAnimator struct {
	mu sync.Mutex

	// Base is the rest pose of the plane.
	Base clipcap.Plane

	// Amplitude is the sweep half-range along the normal, in world
	// units.
	Amplitude float32

	// Period is the duration of one full sweep cycle.
	Period time.Duration

	pose    clipcap.Plane
	hasPose bool
}

// NewPlaneAnimator creates an animator sweeping around base.
func NewPlaneAnimator(base clipcap.Plane, amplitude float32, period time.Duration) *PlaneAnimator {
	return &PlaneAnimator{Base: base, Amplitude: amplitude, Period: period}
}

// At returns the plane pose at elapsed time t. If an external pose is
// set it wins over the time-based sweep.
func (a *PlaneAnimator) At(t time.Duration) clipcap.Plane {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hasPose {
		return a.pose
	}
	if a.Period <= 0 {
		return a.Base
	}
	phase := 2 * math32.Pi * float32(t%a.Period) / float32(a.Period)
	return a.Base.Offset(a.Amplitude * math32.Sin(phase))
}

// SetPose overrides the animation with an externally tracked plane
// (e.g. a controller or tracker pose), until ClearPose.
func (a *PlaneAnimator) SetPose(p clipcap.Plane) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pose = p
	a.hasPose = true
}

// ClearPose returns control to the time-based sweep.
func (a *PlaneAnimator) ClearPose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hasPose = false
}

// Update advances the effect's plane to the pose at time t.
// Call once per frame before rendering.
func (a *PlaneAnimator) Update(eff *clipcap.Effect, t time.Duration) {
	eff.SetPlane(a.At(t))
}
