//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// vertexStride is the byte stride per vertex:
// position (vec3) + normal (vec3) + uv (vec2) = 32 bytes.
const vertexStride = 32

// ensurePipelines creates the shader modules, layouts, and the three
// render pipelines on first use.
func (r *ClipRenderer) ensurePipelines() error {
	if r.frontPipeline != nil {
		return nil
	}
	return r.createPipelines()
}

// createPipelines compiles the shaders and builds the front, cap, and
// plain pipelines. All three share one bind group layout (a single
// uniform buffer at group(0) binding(0)) and one vertex layout.
//
// The depth/stencil states encode the pass contract:
//
//   - front: cull back faces, depth Less with write, stencil compare
//     Always with PassOp=Zero. A surviving front fragment marks its
//     pixel as taken.
//   - cap: cull front faces, depth Less with write, stencil compare
//     NotEqual against the default reference 0 with PassOp=Keep. The
//     cap only lands where the stencil still holds the non-zero clear
//     value.
//   - plain: cull back faces, depth Less with write, stencil untouched.
func (r *ClipRenderer) createPipelines() error {
	litShader, err := createShaderModule(r.device, "clip_lit_shader", clipLitShaderSource)
	if err != nil {
		return fmt.Errorf("compile lit shader: %w", err)
	}
	r.litShader = litShader

	capShader, err := createShaderModule(r.device, "clip_cap_shader", clipCapShaderSource)
	if err != nil {
		return fmt.Errorf("compile cap shader: %w", err)
	}
	r.capShader = capShader

	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "clip_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "clip_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	vertexBufferLayout := []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
				{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}, // uv
			},
		},
	}

	multisample := gputypes.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}

	keepStencil := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}

	frontPipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "clip_front_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.litShader,
			EntryPoint: "vs_main",
			Buffers:    vertexBufferLayout,
		},
		Fragment: &hal.FragmentState{
			Module:     r.litShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth24PlusStencil8,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationZero,
			},
			StencilBack:      keepStencil,
			StencilReadMask:  0xFF,
			StencilWriteMask: 0xFF,
		},
		Multisample: multisample,
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeBack,
		},
	})
	if err != nil {
		return fmt.Errorf("create front pipeline: %w", err)
	}
	r.frontPipeline = frontPipeline

	capPipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "clip_cap_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.capShader,
			EntryPoint: "vs_main",
			Buffers:    vertexBufferLayout,
		},
		Fragment: &hal.FragmentState{
			Module:     r.capShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth24PlusStencil8,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionNotEqual,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionNotEqual,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0xFF,
			StencilWriteMask: 0xFF,
		},
		Multisample: multisample,
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeFront,
		},
	})
	if err != nil {
		return fmt.Errorf("create cap pipeline: %w", err)
	}
	r.capPipeline = capPipeline

	plainPipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "clip_plain_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.litShader,
			EntryPoint: "vs_main",
			Buffers:    vertexBufferLayout,
		},
		Fragment: &hal.FragmentState{
			Module:     r.litShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth24PlusStencil8,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront:      keepStencil,
			StencilBack:       keepStencil,
			StencilReadMask:   0xFF,
			StencilWriteMask:  0x00,
		},
		Multisample: multisample,
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeBack,
		},
	})
	if err != nil {
		return fmt.Errorf("create plain pipeline: %w", err)
	}
	r.plainPipeline = plainPipeline

	return nil
}

// destroyPipelines releases pipeline resources in reverse creation
// order. Safe on a renderer with partially created pipelines.
func (r *ClipRenderer) destroyPipelines() {
	if r.device == nil {
		return
	}
	if r.plainPipeline != nil {
		r.device.DestroyRenderPipeline(r.plainPipeline)
		r.plainPipeline = nil
	}
	if r.capPipeline != nil {
		r.device.DestroyRenderPipeline(r.capPipeline)
		r.capPipeline = nil
	}
	if r.frontPipeline != nil {
		r.device.DestroyRenderPipeline(r.frontPipeline)
		r.frontPipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.capShader != nil {
		r.device.DestroyShaderModule(r.capShader)
		r.capShader = nil
	}
	if r.litShader != nil {
		r.device.DestroyShaderModule(r.litShader)
		r.litShader = nil
	}
}
