//go:build !nogpu

// Package gpu implements the capped cross-section renderer on a
// wgpu/hal device. The two passes of a clipped draw are recorded
// front-then-cap into a single render pass; the stencil attachment is
// cleared to the effect's reference value at pass start, so the cap
// pipeline's NotEqual-zero test only passes where no front-face
// fragment has drawn.
package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/scene"
)

// gpuTimeout bounds the fence wait for one frame.
const gpuTimeout = 5 * time.Second

// ClipRenderer manages the GPU resources for two-pass cross-section
// rendering: the color and depth/stencil attachments, the shared
// uniform layout, and the three render pipelines (front, cap, plain).
//
// Textures are resized lazily by EnsureTextures; pipelines are created
// once and survive resizes.
type ClipRenderer struct {
	device hal.Device
	queue  hal.Queue

	// colorTex is the single-sample RGBA8 render target with CopySrc
	// usage for CPU readback.
	colorTex  hal.Texture
	colorView hal.TextureView

	// depthTex carries depth and the stencil plane coordinating the
	// two passes.
	depthTex  hal.Texture
	depthView hal.TextureView

	width, height uint32

	litShader hal.ShaderModule
	capShader hal.ShaderModule

	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	// frontPipeline culls back faces, shades lit, and zeroes the
	// stencil where depth passes.
	frontPipeline hal.RenderPipeline

	// capPipeline culls front faces and draws the flat cap color
	// where the stencil still holds the non-zero clear value.
	capPipeline hal.RenderPipeline

	// plainPipeline draws non-clipping materials: same lit shader,
	// stencil untouched.
	plainPipeline hal.RenderPipeline
}

// NewClipRenderer creates a renderer on the given device and queue.
// Pipelines and textures are allocated on first use.
func NewClipRenderer(device hal.Device, queue hal.Queue) *ClipRenderer {
	return &ClipRenderer{device: device, queue: queue}
}

// Size returns the current attachment dimensions, (0, 0) before the
// first EnsureTextures.
func (r *ClipRenderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// EnsureTextures creates or recreates the color and depth/stencil
// attachments when the requested dimensions differ from the current
// ones. A no-op when the size matches.
func (r *ClipRenderer) EnsureTextures(width, height uint32) error {
	if r.width == width && r.height == height && r.colorTex != nil {
		return nil
	}

	r.destroyTextures()

	size := hal.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}

	colorTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "clip_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	r.colorTex = colorTex

	colorView, err := r.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "clip_color_view",
	})
	if err != nil {
		r.destroyTextures()
		return fmt.Errorf("create color texture view: %w", err)
	}
	r.colorView = colorView

	depthTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "clip_depth_stencil",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth24PlusStencil8,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		r.destroyTextures()
		return fmt.Errorf("create depth/stencil texture: %w", err)
	}
	r.depthTex = depthTex

	depthView, err := r.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "clip_depth_stencil_view",
	})
	if err != nil {
		r.destroyTextures()
		return fmt.Errorf("create depth/stencil texture view: %w", err)
	}
	r.depthView = depthView

	r.width = width
	r.height = height
	return nil
}

// Destroy releases all GPU resources held by the renderer. Safe to
// call multiple times.
func (r *ClipRenderer) Destroy() {
	r.destroyPipelines()
	r.destroyTextures()
}

func (r *ClipRenderer) destroyTextures() {
	if r.depthView != nil {
		r.device.DestroyTextureView(r.depthView)
		r.depthView = nil
	}
	if r.depthTex != nil {
		r.device.DestroyTexture(r.depthTex)
		r.depthTex = nil
	}
	if r.colorView != nil {
		r.device.DestroyTextureView(r.colorView)
		r.colorView = nil
	}
	if r.colorTex != nil {
		r.device.DestroyTexture(r.colorTex)
		r.colorTex = nil
	}
	r.width = 0
	r.height = 0
}

// RenderPassDescriptor returns the descriptor for one frame: color
// cleared to the background, depth cleared to the far value, and the
// stencil cleared to the effect's reference value. Clearing stencil
// to the reference is what arms the cap pipeline's NotEqual-zero
// test. Returns nil before EnsureTextures.
func (r *ClipRenderer) RenderPassDescriptor(bg clipcap.RGBA, stencilRef uint8) *hal.RenderPassDescriptor {
	if r.colorView == nil || r.depthView == nil {
		return nil
	}
	return &hal.RenderPassDescriptor{
		Label: "clip_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       r.colorView,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{R: float64(bg.R), G: float64(bg.G), B: float64(bg.B), A: float64(bg.A)},
			},
		},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              r.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: uint32(stencilRef),
		},
	}
}

// solidDraw holds the per-solid GPU resources for one frame.
type solidDraw struct {
	vertBuf    hal.Buffer
	vertCount  uint32
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	clipped    bool
}

// Render draws the scene from cam into target. All solids are
// recorded into a single render pass; clipped solids get their front
// draw immediately followed by their cap draw, which is the ordering
// the stencil coordination depends on.
func (r *ClipRenderer) Render(target *clipcap.Pixmap, s *scene.Scene, cam clipcap.Camera) error {
	w := uint32(target.W)
	h := uint32(target.H)
	if err := r.EnsureTextures(w, h); err != nil {
		return fmt.Errorf("ensure textures: %w", err)
	}
	if err := r.ensurePipelines(); err != nil {
		return fmt.Errorf("ensure pipelines: %w", err)
	}

	aspect := float32(target.W) / float32(target.H)
	vp := cam.ViewProjection(aspect)
	stencilRef := clipStencilRef(s)

	draws, err := r.buildDraws(s, vp, cam.Eye)
	if err != nil {
		r.cleanupDraws(draws)
		return err
	}
	defer r.cleanupDraws(draws)

	return r.encodeAndReadback(w, h, s.Background, stencilRef, draws, target)
}

// clipStencilRef returns the stencil clear value for the frame: the
// reference of the first clipping material, or 1 when no solid is
// clipped.
func clipStencilRef(s *scene.Scene) uint8 {
	for _, inst := range s.Solids() {
		if m := inst.Node.Material(); m != nil && m.Clip != nil {
			return m.Clip.StencilRef
		}
	}
	return 1
}

// buildDraws uploads vertex and uniform data for every solid.
func (r *ClipRenderer) buildDraws(s *scene.Scene, vp clipcap.Mat4, eye clipcap.Vec3) ([]solidDraw, error) {
	var draws []solidDraw
	for _, inst := range s.Solids() {
		mat := inst.Node.Material()
		if mat == nil || inst.Node.Mesh == nil {
			continue
		}

		vertData, vertCount := packMeshVertices(inst.Node.Mesh)
		if vertCount == 0 {
			continue
		}

		vertBuf, err := r.createAndUploadBuffer("clip_verts", vertData,
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return draws, fmt.Errorf("create vertex buffer: %w", err)
		}

		uniformData := packUniforms(vp, inst.World, mat, s.Light, eye)
		uniformBuf, err := r.createAndUploadBuffer("clip_uniforms", uniformData,
			gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
		if err != nil {
			r.device.DestroyBuffer(vertBuf)
			return draws, fmt.Errorf("create uniform buffer: %w", err)
		}

		bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "clip_bind",
			Layout: r.uniformLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
				}},
			},
		})
		if err != nil {
			r.device.DestroyBuffer(uniformBuf)
			r.device.DestroyBuffer(vertBuf)
			return draws, fmt.Errorf("create bind group: %w", err)
		}

		draws = append(draws, solidDraw{
			vertBuf:    vertBuf,
			vertCount:  vertCount,
			uniformBuf: uniformBuf,
			bindGroup:  bindGroup,
			clipped:    mat.Clip != nil,
		})
	}
	return draws, nil
}

func (r *ClipRenderer) cleanupDraws(draws []solidDraw) {
	for _, d := range draws {
		if d.bindGroup != nil {
			r.device.DestroyBindGroup(d.bindGroup)
		}
		if d.uniformBuf != nil {
			r.device.DestroyBuffer(d.uniformBuf)
		}
		if d.vertBuf != nil {
			r.device.DestroyBuffer(d.vertBuf)
		}
	}
}

// encodeAndReadback records the render pass, copies the color
// attachment to a staging buffer, submits, waits, and reads the
// pixels back into target.
func (r *ClipRenderer) encodeAndReadback(
	w, h uint32, bg clipcap.RGBA, stencilRef uint8,
	draws []solidDraw, target *clipcap.Pixmap,
) error {
	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "clip_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("clip_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(r.RenderPassDescriptor(bg, stencilRef))
	for _, d := range draws {
		if d.clipped {
			// Front pass first, cap pass second. The cap pipeline's
			// stencil test reads what the front pass wrote.
			rp.SetPipeline(r.frontPipeline)
			rp.SetBindGroup(0, d.bindGroup, nil)
			rp.SetVertexBuffer(0, d.vertBuf, 0)
			rp.Draw(d.vertCount, 1, 0, 0)

			rp.SetPipeline(r.capPipeline)
			rp.SetBindGroup(0, d.bindGroup, nil)
			rp.SetVertexBuffer(0, d.vertBuf, 0)
			rp.Draw(d.vertCount, 1, 0, 0)
		} else {
			rp.SetPipeline(r.plainPipeline)
			rp.SetBindGroup(0, d.bindGroup, nil)
			rp.SetVertexBuffer(0, d.vertBuf, 0)
			rp.Draw(d.vertCount, 1, 0, 0)
		}
	}
	rp.End()

	// The color attachment must transition to a copy source before
	// CopyTextureToBuffer; a no-op on backends without explicit
	// layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	pixelBufSize := uint64(w) * uint64(h) * 4
	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "clip_staging",
		Size:  pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, gpuTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, pixelBufSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	copy(target.Pix, readback)
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *ClipRenderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
