package clipcap

// ClipProps holds the per-effect parameters consumed by the two-pass
// clip renderer. A material with non-nil ClipProps is drawn with the
// front-face clip pass followed by the back-face cap pass; a material
// without them is drawn normally.
type ClipProps struct {
	// Plane is the world-space clipping plane, updated by the host
	// once per frame.
	Plane Plane

	// CapColor fills the exposed cross-section. Flat — no lighting.
	CapColor RGBA

	// StencilRef is the non-zero stencil clear/reference value that
	// coordinates the two passes. Zero is reserved as the
	// "front pass already drew here" marker.
	StencilRef uint8
}

// Material describes the surface appearance of a renderable: base
// color, optional texture, and the metallic/smoothness pair the lit
// pass feeds into its specular model.
type Material struct {
	BaseColor  RGBA
	Texture    *Texture
	Metallic   float32
	Smoothness float32

	// Clip, when non-nil, turns this material into a clipping
	// material rendered with the capped cross-section effect.
	Clip *ClipProps
}

// DefaultMaterial returns a neutral gray untextured material.
func DefaultMaterial() *Material {
	return &Material{
		BaseColor:  RGB(0.5, 0.5, 0.5),
		Metallic:   0,
		Smoothness: 0.5,
	}
}

// InheritFrom copies the appearance properties {BaseColor, Texture,
// Metallic, Smoothness} from src, leaving Clip untouched. This is the
// explicit property-copy step used when attaching the effect to a
// surface that already has a material.
func (m *Material) InheritFrom(src *Material) {
	if src == nil {
		return
	}
	m.BaseColor = src.BaseColor
	m.Texture = src.Texture
	m.Metallic = src.Metallic
	m.Smoothness = src.Smoothness
}

// Clone returns a shallow copy of the material. ClipProps are copied
// by value so the clone can be retargeted independently; the texture
// is shared.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	c := *m
	if m.Clip != nil {
		cp := *m.Clip
		c.Clip = &cp
	}
	return &c
}
