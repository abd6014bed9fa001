//go:build !nogpu

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/clipcap"
	"github.com/gogpu/clipcap/backend"
	"github.com/gogpu/clipcap/scene"
)

func TestWGPUBackendRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendWGPU) {
		t.Fatal("importing the gpu package must register the wgpu backend")
	}
	b := backend.Get(backend.BackendWGPU)
	if b == nil {
		t.Fatal("Get returned nil for the wgpu backend")
	}
	if b.Name() != backend.BackendWGPU {
		t.Errorf("Name = %q, want %q", b.Name(), backend.BackendWGPU)
	}
}

func TestWGPUBackend_RenderBeforeInit(t *testing.T) {
	b := &WGPUBackend{}
	err := b.Render(clipcap.NewPixmap(8, 8), scene.NewScene(), clipcap.DefaultCamera())
	if !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Render before Init = %v, want ErrNotInitialized", err)
	}
	// Close without Init is safe.
	b.Close()
}

func TestWGPUBackend_SetDeviceHandleNil(t *testing.T) {
	b := &WGPUBackend{}
	if err := b.SetDeviceHandle(nil); !errors.Is(err, ErrNilDeviceHandle) {
		t.Errorf("SetDeviceHandle(nil) = %v, want ErrNilDeviceHandle", err)
	}
}

func TestWGPUBackend_SetDeviceProviderRejectsNonHAL(t *testing.T) {
	b := &WGPUBackend{}
	if err := b.SetDeviceProvider(struct{}{}); err == nil {
		t.Error("expected error for a provider without HAL accessors")
	}
}
