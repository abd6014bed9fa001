package backend

import (
	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/internal/soft"
	"github.com/gogpu/clipcap/scene"
)

// SoftwareBackend renders on the CPU with the reference rasterizer.
// It is always available and serves as the fallback when no GPU
// adapter can be opened.
type SoftwareBackend struct {
	initialized bool
	renderer    *soft.Renderer
	width       int
	height      int
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.renderer = nil
	b.initialized = false
}

// Render rasterizes the scene into target. The internal renderer and
// its depth/stencil planes are reused across frames of the same size.
func (b *SoftwareBackend) Render(target *clipcap.Pixmap, s *scene.Scene, cam clipcap.Camera) error {
	if !b.initialized {
		return ErrNotInitialized
	}
	if target == nil {
		return ErrNilTarget
	}
	if s == nil {
		return nil
	}

	if b.renderer == nil || b.width != target.W || b.height != target.H {
		b.renderer = soft.NewRenderer(target.W, target.H)
		b.width = target.W
		b.height = target.H
	}

	b.renderer.Render(s, cam)
	b.renderer.Framebuffer().Resolve(target)
	return nil
}

// Renderer exposes the underlying rasterizer, including its depth and
// stencil planes. Returns nil before the first Render.
func (b *SoftwareBackend) Renderer() *soft.Renderer {
	return b.renderer
}
