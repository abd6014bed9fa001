//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import the Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Device bundles the HAL objects one GPU backend instance owns.
// External is set when the device came from a shared provider and
// must not be destroyed on Close.
type Device struct {
	Instance hal.Instance
	Dev      hal.Device
	Queue    hal.Queue
	Name     string
	External bool
}

// OpenDevice creates a HAL instance on the Vulkan backend and opens a
// device on the best available adapter, preferring discrete over
// integrated GPUs.
func OpenDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}
	return &Device{
		Instance: instance,
		Dev:      openDev.Device,
		Queue:    openDev.Queue,
		Name:     selected.Info.Name,
	}, nil
}

// FromProvider adopts a shared device from an external provider. The
// provider must expose HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func FromProvider(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("provider HalQueue is not hal.Queue")
	}
	return &Device{Dev: device, Queue: queue, Name: "shared", External: true}, nil
}

// Close destroys the owned device and instance. Shared devices are
// released, not destroyed.
func (d *Device) Close() {
	if d == nil {
		return
	}
	if !d.External {
		if d.Dev != nil {
			d.Dev.Destroy()
		}
		if d.Instance != nil {
			d.Instance.Destroy()
		}
	}
	d.Dev = nil
	d.Queue = nil
	d.Instance = nil
}
