package clipcap

// Plane is an infinite clipping plane in world space, defined by a
// point on the plane and the plane normal. Fragments on the positive
// side of the normal are clipped away.
//
// Normal should be unit length: the signed distance then equals the
// true Euclidean distance. A non-unit normal scales distances by its
// magnitude but leaves the sign — and therefore the clip decision —
// unchanged. A zero normal is a precondition violation; the distance
// degenerates to 0 everywhere and nothing is clipped.
type Plane struct {
	Normal Vec3 `yaml:"normal"`
	Point  Vec3 `yaml:"point"`
}

// NewPlane creates a plane from a normal and a point, normalizing the
// normal.
func NewPlane(normal, point Vec3) Plane {
	return Plane{Normal: normal.Normalize(), Point: point}
}

// SignedDistance returns dot(Normal, p - Point): positive on the
// clipped side, negative or zero on the kept side. This is the single
// evaluator shared by the front-face and back-face passes, on both the
// CPU and WGSL paths.
func (pl Plane) SignedDistance(p Vec3) float32 {
	return pl.Normal.Dot(p.Sub(pl.Point))
}

// Clips reports whether the world-space position p is discarded.
// Points exactly on the plane are kept.
func (pl Plane) Clips(p Vec3) bool {
	return pl.SignedDistance(p) > 0
}

// Offset returns the plane translated by dist along its own normal.
func (pl Plane) Offset(dist float32) Plane {
	return Plane{Normal: pl.Normal, Point: pl.Point.Add(pl.Normal.Mul(dist))}
}
