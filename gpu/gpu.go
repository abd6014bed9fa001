//go:build !nogpu

// Package gpu registers the wgpu rendering backend.
//
// Import this package to render the cross-section effect on the GPU
// via gogpu/wgpu. If no adapter can be opened (no Vulkan available),
// backend.InitDefault falls back to the software renderer.
//
// Usage:
//
//	import _ "github.com/gogpu/clipcap/gpu" // enable GPU rendering
package gpu

import (
	"fmt"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/backend"
	gpuimpl "github.com/gogpu/clipcap/internal/gpu"
	"github.com/gogpu/clipcap/scene"
)

func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return &WGPUBackend{}
	})
}

// WGPUBackend renders on a wgpu/hal device. The zero value is ready
// for Init.
type WGPUBackend struct {
	dev      *gpuimpl.Device
	renderer *gpuimpl.ClipRenderer
}

// Name returns the backend identifier.
func (b *WGPUBackend) Name() string {
	return backend.BackendWGPU
}

// Init opens a GPU device on the best available adapter.
func (b *WGPUBackend) Init() error {
	dev, err := gpuimpl.OpenDevice()
	if err != nil {
		return fmt.Errorf("wgpu backend: %w", err)
	}
	b.dev = dev
	b.renderer = gpuimpl.NewClipRenderer(dev.Dev, dev.Queue)
	clipcap.Logger().Info("wgpu backend initialized", "adapter", dev.Name)
	return nil
}

// SetDeviceProvider switches the backend to a shared GPU device from
// an external provider (e.g. a gogpu context). The provider must
// implement HalDevice() any and HalQueue() any returning hal types.
// Call before the first Render.
func (b *WGPUBackend) SetDeviceProvider(provider any) error {
	dev, err := gpuimpl.FromProvider(provider)
	if err != nil {
		return fmt.Errorf("wgpu backend: %w", err)
	}
	b.Close()
	b.dev = dev
	b.renderer = gpuimpl.NewClipRenderer(dev.Dev, dev.Queue)
	clipcap.Logger().Info("wgpu backend using shared device")
	return nil
}

// Close releases the renderer and, for owned devices, the device and
// instance.
func (b *WGPUBackend) Close() {
	if b.renderer != nil {
		b.renderer.Destroy()
		b.renderer = nil
	}
	if b.dev != nil {
		b.dev.Close()
		b.dev = nil
	}
}

// Render draws the scene into target on the GPU.
func (b *WGPUBackend) Render(target *clipcap.Pixmap, s *scene.Scene, cam clipcap.Camera) error {
	if b.renderer == nil {
		return backend.ErrNotInitialized
	}
	if target == nil {
		return backend.ErrNilTarget
	}
	if s == nil {
		return nil
	}
	return b.renderer.Render(target, s, cam)
}
