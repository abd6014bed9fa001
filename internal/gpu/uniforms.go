//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/scene"
)

// uniformSize is the byte size of the per-solid uniform buffer.
// Layout (matches the Uniforms struct in both WGSL shaders):
//
//	mvp         mat4x4<f32>  64 bytes
//	model       mat4x4<f32>  64 bytes
//	plane       vec4<f32>    16 bytes  (normal.xyz, dot(normal, point))
//	base_color  vec4<f32>    16 bytes
//	cap_color   vec4<f32>    16 bytes
//	light_dir   vec4<f32>    16 bytes  (direction.xyz, ambient)
//	light_color vec4<f32>    16 bytes
//	eye         vec4<f32>    16 bytes
//	material    vec4<f32>    16 bytes  (metallic, smoothness, 0, 0)
//
// Total = 240 bytes.
const uniformSize = 240

// neverClipPlane is the plane uniform for the plain pipeline: a zero
// normal with w=1 gives every point distance -1, so nothing is
// discarded.
var neverClipPlane = [4]float32{0, 0, 0, 1}

// packUniforms serializes the per-solid uniform buffer for one frame.
// The same buffer serves the front pass, the cap pass, and the plain
// pipeline; unused fields (cap_color for plain draws) are simply
// ignored by the shader.
func packUniforms(
	vp, model clipcap.Mat4, mat *clipcap.Material,
	light scene.DirectionalLight, eye clipcap.Vec3,
) []byte {
	buf := make([]byte, uniformSize)
	off := 0

	mvp := vp.Mul(model)
	off = putMat4(buf, off, mvp)
	off = putMat4(buf, off, model)

	plane := neverClipPlane
	capColor := clipcap.RGBA{}
	if mat.Clip != nil {
		p := mat.Clip.Plane
		plane = [4]float32{p.Normal.X, p.Normal.Y, p.Normal.Z, p.Normal.Dot(p.Point)}
		capColor = mat.Clip.CapColor
	}
	off = putVec4(buf, off, plane[0], plane[1], plane[2], plane[3])
	off = putVec4(buf, off, mat.BaseColor.R, mat.BaseColor.G, mat.BaseColor.B, mat.BaseColor.A)
	off = putVec4(buf, off, capColor.R, capColor.G, capColor.B, capColor.A)
	off = putVec4(buf, off, light.Direction.X, light.Direction.Y, light.Direction.Z, light.Ambient)
	off = putVec4(buf, off, light.Color.R, light.Color.G, light.Color.B, light.Color.A)
	off = putVec4(buf, off, eye.X, eye.Y, eye.Z, 0)
	putVec4(buf, off, mat.Metallic, mat.Smoothness, 0, 0)

	return buf
}

// putMat4 writes a column-major mat4x4<f32> and returns the next
// offset. Mat4 already stores column-major, matching WGSL memory
// layout.
func putMat4(buf []byte, off int, m clipcap.Mat4) int {
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[off+i*4:], math.Float32bits(m[i]))
	}
	return off + 64
}

func putVec4(buf []byte, off int, x, y, z, w float32) int {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(z))
	binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(w))
	return off + 16
}

// packMeshVertices expands the indexed mesh into a non-indexed
// interleaved vertex stream (position, normal, uv) and returns the
// bytes plus the vertex count.
func packMeshVertices(mesh *clipcap.Mesh) ([]byte, uint32) {
	n := len(mesh.Indices)
	if n == 0 {
		return nil, 0
	}
	buf := make([]byte, n*vertexStride)
	off := 0
	for _, idx := range mesh.Indices {
		v := mesh.Vertices[idx]
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.Position.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Position.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(v.Position.Z))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(v.Normal.X))
		binary.LittleEndian.PutUint32(buf[off+16:], math.Float32bits(v.Normal.Y))
		binary.LittleEndian.PutUint32(buf[off+20:], math.Float32bits(v.Normal.Z))
		binary.LittleEndian.PutUint32(buf[off+24:], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(buf[off+28:], math.Float32bits(v.V))
		off += vertexStride
	}
	return buf, uint32(n)
}
