package soft

import (
	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/scene"
)

// minClipW rejects triangles that reach behind the eye. The renderer
// does not clip against the near plane; test and demo scenes keep
// geometry in front of it.
const minClipW = 1e-4

// pass selects the fragment program and rasterizer state for one
// rasterization sweep over a mesh, the CPU equivalent of binding one
// of the GPU pipelines.
type pass int

const (
	// passPlain draws an ordinary material: cull back faces, depth
	// Less, no plane, no stencil interaction.
	passPlain pass = iota

	// passFront is the front-face clip pass: cull back faces,
	// discard fragments past the plane, shade lit, and force the
	// pixel's stencil to zero when depth passes.
	passFront

	// passCap is the back-face cap pass: cull front faces, discard
	// fragments past the plane, and draw the flat cap color only
	// where the stencil still holds the non-zero reference value.
	passCap
)

// Renderer rasterizes a scene into a framebuffer with the two-pass
// capped cross-section semantics. It is not safe for concurrent use;
// fragments within one pass are order-independent, the two passes of
// a clipped draw are not.
type Renderer struct {
	fb *Framebuffer
}

// NewRenderer creates a renderer with a w x h framebuffer.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{fb: NewFramebuffer(w, h)}
}

// Framebuffer exposes the render target, including its depth and
// stencil planes.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Render draws the scene from cam into the framebuffer. For solids
// carrying a clipping material the front pass is always rasterized
// before the cap pass; that ordering is what makes the stencil
// coordination sound, so no API exists to run the passes separately.
func (r *Renderer) Render(s *scene.Scene, cam clipcap.Camera) {
	r.fb.Reset(s.Background, frameStencilRef(s))
	aspect := float32(r.fb.W) / float32(r.fb.H)
	vp := cam.ViewProjection(aspect)

	for _, inst := range s.Solids() {
		mat := inst.Node.Material()
		if mat == nil || inst.Node.Mesh == nil {
			continue
		}
		if mat.Clip != nil {
			r.drawMesh(inst, mat, vp, cam.Eye, s.Light, passFront)
			r.drawMesh(inst, mat, vp, cam.Eye, s.Light, passCap)
		} else {
			r.drawMesh(inst, mat, vp, cam.Eye, s.Light, passPlain)
		}
	}
}

// frameStencilRef returns the stencil clear value for the frame: the
// reference of the first clipping material, or 1 when no solid is
// clipped (the value is then never read).
func frameStencilRef(s *scene.Scene) uint8 {
	for _, inst := range s.Solids() {
		if m := inst.Node.Material(); m != nil && m.Clip != nil {
			return m.Clip.StencilRef
		}
	}
	return 1
}

// fragVertex is a triangle corner after vertex processing: world
// attributes plus screen position and perspective terms.
type fragVertex struct {
	world  clipcap.Vec3
	normal clipcap.Vec3
	u, v   float32

	sx, sy float32 // pixel coordinates
	ndcX   float32
	ndcY   float32
	z      float32 // depth in [0, 1]
	invW   float32
}

func (r *Renderer) drawMesh(
	inst scene.SolidInstance, mat *clipcap.Material,
	vp clipcap.Mat4, eye clipcap.Vec3, light scene.DirectionalLight, p pass,
) {
	mesh := inst.Node.Mesh
	w := float32(r.fb.W)
	h := float32(r.fb.H)

	for i := 0; i < mesh.TriangleCount(); i++ {
		va, vb, vc := mesh.Triangle(i)
		a, okA := r.processVertex(va, inst.World, vp, w, h)
		b, okB := r.processVertex(vb, inst.World, vp, w, h)
		c, okC := r.processVertex(vc, inst.World, vp, w, h)
		if !okA || !okB || !okC {
			continue
		}

		// Facing from the signed area in NDC (y up): positive is
		// counter-clockwise, i.e. front-facing.
		area2 := (b.ndcX-a.ndcX)*(c.ndcY-a.ndcY) - (b.ndcY-a.ndcY)*(c.ndcX-a.ndcX)
		if area2 == 0 {
			continue
		}
		front := area2 > 0
		if p == passCap {
			if front {
				continue // front faces culled upstream of the cap pass
			}
		} else if !front {
			continue // back faces culled upstream of lit passes
		}

		r.rasterize(a, b, c, mat, eye, light, p)
	}
}

// processVertex runs the vertex stage: object to world to clip space,
// perspective divide, viewport transform.
func (r *Renderer) processVertex(
	v clipcap.Vertex, model clipcap.Mat4, vp clipcap.Mat4, w, h float32,
) (fragVertex, bool) {
	world := model.MulPoint(v.Position)
	clip := vp.MulVec4(clipcap.Vec4{X: world.X, Y: world.Y, Z: world.Z, W: 1})
	if clip.W < minClipW {
		return fragVertex{}, false
	}
	ndc := clip.PerspectiveDivide()
	return fragVertex{
		world:  world,
		normal: model.MulDirection(v.Normal),
		u:      v.U,
		v:      v.V,
		sx:     (ndc.X + 1) / 2 * w,
		sy:     (1 - ndc.Y) / 2 * h,
		ndcX:   ndc.X,
		ndcY:   ndc.Y,
		z:      ndc.Z,
		invW:   1 / clip.W,
	}, true
}

// edge is the signed doubled area of triangle (a, b, p) in pixel
// space. Shared by the inside test and the barycentric weights.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (r *Renderer) rasterize(
	a, b, c fragVertex, mat *clipcap.Material,
	eye clipcap.Vec3, light scene.DirectionalLight, p pass,
) {
	area := edge(a.sx, a.sy, b.sx, b.sy, c.sx, c.sy)
	if area == 0 {
		return
	}
	invArea := 1 / area

	minX := clampInt(floorF(min3(a.sx, b.sx, c.sx)), 0, r.fb.W-1)
	maxX := clampInt(ceilF(max3(a.sx, b.sx, c.sx)), 0, r.fb.W-1)
	minY := clampInt(floorF(min3(a.sy, b.sy, c.sy)), 0, r.fb.H-1)
	maxY := clampInt(ceilF(max3(a.sy, b.sy, c.sy)), 0, r.fb.H-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(b.sx, b.sy, c.sx, c.sy, px, py) * invArea
			w1 := edge(c.sx, c.sy, a.sx, a.sy, px, py) * invArea
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			r.shadeFragment(a, b, c, w0, w1, w2, x, y, mat, eye, light, p)
		}
	}
}

// shadeFragment runs the per-fragment stage: attribute interpolation,
// the plane-distance clip test, then the pass-specific depth/stencil
// sequence. A discarded fragment writes nothing to any plane.
func (r *Renderer) shadeFragment(
	a, b, c fragVertex, w0, w1, w2 float32, x, y int,
	mat *clipcap.Material, eye clipcap.Vec3, light scene.DirectionalLight, p pass,
) {
	// Depth interpolates affinely in screen space; world-space
	// attributes need perspective correction.
	z := w0*a.z + w1*b.z + w2*c.z

	invW := w0*a.invW + w1*b.invW + w2*c.invW
	pw := 1 / invW
	world := clipcap.Vec3{
		X: (w0*a.world.X*a.invW + w1*b.world.X*b.invW + w2*c.world.X*c.invW) * pw,
		Y: (w0*a.world.Y*a.invW + w1*b.world.Y*b.invW + w2*c.world.Y*c.invW) * pw,
		Z: (w0*a.world.Z*a.invW + w1*b.world.Z*b.invW + w2*c.world.Z*c.invW) * pw,
	}

	// Plane-distance evaluator, shared by both clip passes.
	if p != passPlain && mat.Clip.Plane.Clips(world) {
		return
	}

	idx := r.fb.index(x, y)

	if p == passCap {
		// Stencil test: only pixels still holding the non-zero
		// reference value (Fresh) accept the cap. A pixel the front
		// pass zeroed is never overridden, whatever the depth says.
		if r.fb.Stencil[idx] == 0 {
			return
		}
		if z >= r.fb.Depth[idx] {
			return
		}
		r.fb.Color[idx] = mat.Clip.CapColor
		r.fb.Depth[idx] = z
		// PassOp Keep: the stencil retains the reference value.
		return
	}

	if z >= r.fb.Depth[idx] {
		return
	}

	normal := clipcap.Vec3{
		X: (w0*a.normal.X*a.invW + w1*b.normal.X*b.invW + w2*c.normal.X*c.invW) * pw,
		Y: (w0*a.normal.Y*a.invW + w1*b.normal.Y*b.invW + w2*c.normal.Y*c.invW) * pw,
		Z: (w0*a.normal.Z*a.invW + w1*b.normal.Z*b.invW + w2*c.normal.Z*c.invW) * pw,
	}
	u := (w0*a.u*a.invW + w1*b.u*b.invW + w2*c.u*c.invW) * pw
	v := (w0*a.v*a.invW + w1*b.v*b.invW + w2*c.v*c.invW) * pw

	r.fb.Color[idx] = shade(mat, world, normal, u, v, eye, light)
	r.fb.Depth[idx] = z
	if p == passFront {
		// Stencil comparison is Always; PassOp forces zero, marking
		// the pixel as covered by surviving front geometry.
		r.fb.Stencil[idx] = 0
	}
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func floorF(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

func ceilF(v float32) int {
	i := int(v)
	if v > 0 && float32(i) != v {
		i++
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
