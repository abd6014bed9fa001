//go:build !nogpu

package gpu

import (
	"errors"

	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between clipcap and GPU frameworks
// like gogpu: the host implements DeviceHandle and passes it in,
// letting the effect render on the shared device instead of opening
// its own. Concrete gogpu providers additionally expose HalDevice()
// and HalQueue(); SetDeviceHandle relies on that to reach the
// wgpu/hal layer.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping
// full compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNilDeviceHandle is returned when SetDeviceHandle receives nil or
// a handle without a device (e.g. a CPU-only null handle).
var ErrNilDeviceHandle = errors.New("gpu: device handle has no device")

// SetDeviceHandle switches the backend to a shared host device.
// Equivalent to SetDeviceProvider with a typed entry point for
// gpucontext hosts. Call before the first Render.
func (b *WGPUBackend) SetDeviceHandle(h DeviceHandle) error {
	if h == nil || h.Device() == nil {
		return ErrNilDeviceHandle
	}
	return b.SetDeviceProvider(h)
}
