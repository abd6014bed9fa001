package soft

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/scene"
)

// shade evaluates the lit fragment program: textured albedo under a
// single directional light with a Blinn-Phong specular term shaped by
// the material's metallic and smoothness parameters. The cap pass
// bypasses this entirely and writes the flat cap color.
func shade(
	mat *clipcap.Material, world, normal clipcap.Vec3, u, v float32,
	eye clipcap.Vec3, light scene.DirectionalLight,
) clipcap.RGBA {
	albedo := mat.BaseColor
	if mat.Texture != nil {
		albedo = albedo.Mod(mat.Texture.Sample(u, v))
	}

	n := normal.Normalize()
	toLight := light.Direction.Neg()

	diffuse := n.Dot(toLight)
	if diffuse < 0 {
		diffuse = 0
	}
	// Metals darken the diffuse term; their reflectance lives in the
	// specular lobe instead.
	diffuse *= 1 - 0.5*mat.Metallic

	viewDir := eye.Sub(world).Normalize()
	half := viewDir.Add(toLight).Normalize()
	ndoth := n.Dot(half)
	if ndoth < 0 {
		ndoth = 0
	}
	shininess := 2 + 126*mat.Smoothness
	spec := math32.Pow(ndoth, shininess) * mat.Smoothness * (0.08 + 0.92*mat.Metallic)

	lit := albedo.Scale(light.Ambient + diffuse)
	lit = lit.Add(light.Color.Scale(spec))
	lit.A = albedo.A
	return lit.Clamp()
}
