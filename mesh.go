package clipcap

// Vertex is a single mesh vertex in object space.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	U, V     float32
}

// Mesh is an indexed triangle mesh. Indices reference Vertices in
// groups of three; winding is counter-clockwise for outward-facing
// (front) triangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (Vertex, Vertex, Vertex) {
	return m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]]
}

// InterleavedF32 flattens the mesh into the vertex-buffer layout the
// GPU pipelines consume: position (3), normal (3), uv (2) per vertex,
// 32 bytes stride.
func (m *Mesh) InterleavedF32() []float32 {
	out := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.U, v.V,
		)
	}
	return out
}
