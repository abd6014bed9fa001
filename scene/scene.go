// Package scene provides the object hierarchy the cross-section
// effect attaches to, and the host-side plane animation.
package scene

import (
	"github.com/gogpu/clipcap"
)

// Node is an element of the scene tree. A node with a non-nil Mesh is
// a renderable solid; nodes without a mesh act as grouping transforms.
type Node struct {
	Name string

	// Transform is the node's local-to-world matrix. Child
	// transforms are composed with their parents' during traversal.
	Transform clipcap.Mat4

	Mesh     *clipcap.Mesh
	material *clipcap.Material

	Children []*Node
}

// NewNode creates an empty group node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: clipcap.Identity()}
}

// NewSolid creates a renderable node with the given mesh and material.
// A nil material gets clipcap.DefaultMaterial.
func NewSolid(name string, mesh *clipcap.Mesh, mat *clipcap.Material) *Node {
	if mat == nil {
		mat = clipcap.DefaultMaterial()
	}
	return &Node{Name: name, Transform: clipcap.Identity(), Mesh: mesh, material: mat}
}

// Material returns the node's current material.
func (n *Node) Material() *clipcap.Material { return n.material }

// SetMaterial replaces the node's material. Together with Material
// this makes Node a clipcap.Surface.
func (n *Node) SetMaterial(m *clipcap.Material) { n.material = m }

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits the node and its descendants depth-first, passing each
// node's composed world transform.
func (n *Node) Walk(fn func(*Node, clipcap.Mat4)) {
	n.walk(clipcap.Identity(), fn)
}

func (n *Node) walk(parent clipcap.Mat4, fn func(*Node, clipcap.Mat4)) {
	world := parent.Mul(n.Transform)
	fn(n, world)
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// DirectionalLight is the single light source of the lit pass.
type DirectionalLight struct {
	// Direction points from the light toward the scene.
	Direction clipcap.Vec3
	Color     clipcap.RGBA
	// Ambient is the constant illumination floor in [0, 1].
	Ambient float32
}

// DefaultLight returns a white light from the upper front left.
func DefaultLight() DirectionalLight {
	return DirectionalLight{
		Direction: clipcap.V3(-0.5, -1, -0.8).Normalize(),
		Color:     clipcap.RGB(1, 1, 1),
		Ambient:   0.25,
	}
}

// Scene is a renderable world: a root node, one light, and a
// background color.
type Scene struct {
	Root       *Node
	Light      DirectionalLight
	Background clipcap.RGBA
}

// NewScene creates a scene with an empty root, the default light, and
// a dark gray background.
func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("root"),
		Light:      DefaultLight(),
		Background: clipcap.RGBA{R: 0.1, G: 0.1, B: 0.12, A: 1},
	}
}

// Solids returns every mesh-bearing node paired with its world
// transform, in traversal order.
func (s *Scene) Solids() []SolidInstance {
	var out []SolidInstance
	s.Root.Walk(func(n *Node, world clipcap.Mat4) {
		if n.Mesh != nil {
			out = append(out, SolidInstance{Node: n, World: world})
		}
	})
	return out
}

// SolidInstance is a renderable node resolved against its composed
// world transform.
type SolidInstance struct {
	Node  *Node
	World clipcap.Mat4
}

// AttachEffect walks the subtree under root and attaches the effect to
// every solid. Returns the number of surfaces attached; nodes that
// already carry the effect are skipped.
func AttachEffect(eff *clipcap.Effect, root *Node) int {
	attached := 0
	root.Walk(func(n *Node, _ clipcap.Mat4) {
		if n.Mesh == nil || eff.Attached(n) {
			return
		}
		if err := eff.Attach(n); err == nil {
			attached++
		}
	})
	return attached
}

// DetachEffect restores the original materials on every solid under
// root.
func DetachEffect(eff *clipcap.Effect, root *Node) {
	root.Walk(func(n *Node, _ clipcap.Mat4) {
		if n.Mesh != nil {
			eff.Detach(n)
		}
	})
}
