// Package soft implements the capped cross-section renderer on the
// CPU. It mirrors the GPU pipeline state exactly — same pass order,
// same stencil semantics, same plane-distance evaluator — and serves
// both as the fallback backend and as the reference the pass
// properties are tested against.
package soft

import "github.com/gogpu/clipcap"

// Framebuffer holds the color, depth, and stencil planes for one
// frame. Color is kept in float RGBA so the cap color survives
// bit-exact; conversion to 8-bit happens only in Resolve.
type Framebuffer struct {
	W, H    int
	Color   []clipcap.RGBA
	Depth   []float32
	Stencil []uint8
}

// NewFramebuffer allocates a framebuffer. Reset must be called before
// the first frame.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		W:       w,
		H:       h,
		Color:   make([]clipcap.RGBA, w*h),
		Depth:   make([]float32, w*h),
		Stencil: make([]uint8, w*h),
	}
}

// Reset reinitializes all three planes for a new frame: color to the
// background, depth to the far value 1, and stencil to the effect's
// reference value. Clearing stencil to the reference is what puts
// every pixel in the Fresh state the cap pass tests for.
func (f *Framebuffer) Reset(bg clipcap.RGBA, stencilRef uint8) {
	for i := range f.Color {
		f.Color[i] = bg
		f.Depth[i] = 1
		f.Stencil[i] = stencilRef
	}
}

// index returns the linear index of pixel (x, y).
func (f *Framebuffer) index(x, y int) int { return y*f.W + x }

// ColorAt returns the float color at (x, y).
func (f *Framebuffer) ColorAt(x, y int) clipcap.RGBA { return f.Color[f.index(x, y)] }

// DepthAt returns the depth at (x, y).
func (f *Framebuffer) DepthAt(x, y int) float32 { return f.Depth[f.index(x, y)] }

// StencilAt returns the stencil value at (x, y).
func (f *Framebuffer) StencilAt(x, y int) uint8 { return f.Stencil[f.index(x, y)] }

// Resolve converts the float color plane into an 8-bit pixmap.
// The pixmap dimensions must match the framebuffer's.
func (f *Framebuffer) Resolve(dst *clipcap.Pixmap) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			dst.Set(x, y, f.Color[f.index(x, y)])
		}
	}
}
