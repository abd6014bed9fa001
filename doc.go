// Package clipcap renders capped cross-sections: geometry is clipped
// against an arbitrary world-space plane and the exposed interior is
// filled with a flat cap color using a two-pass stencil technique.
//
// The algorithm runs two passes per draw, in fixed order, against a
// shared stencil attachment that is cleared to a non-zero reference
// value each frame:
//
//	Pass 1 (front faces, back faces culled): fragments past the plane
//	  are discarded; surviving fragments shade normally and force the
//	  pixel's stencil value to zero.
//	Pass 2 (back faces, front faces culled): fragments past the plane
//	  are discarded; surviving fragments draw the flat cap color only
//	  where the stencil still holds the reference value, i.e. where no
//	  clipped front surface covers the pixel.
//
// Both passes share one plane-distance evaluator: d = dot(n, p - r0),
// discard when d > 0.
//
// The package provides the host-side surface attachment (Effect), the
// scene and animation glue (package scene), a software renderer that
// implements the pass semantics on the CPU (the default backend), and
// a wgpu-based GPU renderer (import the gpu package to register it).
package clipcap
