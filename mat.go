package clipcap

import "github.com/chewxy/math32"

// Mat4 is a 4x4 transformation matrix in column-major order:
// element (row, col) is stored at index col*4+row. This matches the
// memory layout WGSL expects for a mat4x4<f32> uniform.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scale returns a uniform or non-uniform scale matrix.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// RotateY returns a rotation matrix about the +Y axis by angle radians.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	m := Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// RotateX returns a rotation matrix about the +X axis by angle radians.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	m := Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// Mul returns the matrix product m * n, applying n first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec4 transforms a homogeneous vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms a position (w = 1), dropping the resulting w.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}).Vec3()
}

// MulDirection transforms a direction (w = 0) and renormalizes.
// Correct for normals under rigid transforms and uniform scale.
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return m.MulVec4(Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 0}).Vec3().Normalize()
}

// LookAt returns a right-handed view matrix with the camera at eye,
// looking at target, with the given up hint.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Perspective returns a right-handed perspective projection with a
// [0, 1] clip-space depth range (WebGPU convention). fovy is the
// vertical field of view in radians.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	t := math32.Tan(fovy / 2)
	var m Mat4
	m[0] = 1 / (aspect * t)
	m[5] = 1 / t
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
	return m
}
