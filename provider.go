package glyphatlas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceFromProvider extracts the wgpu/hal device and queue from a shared
// device provider (e.g. a gogpu application). The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func DeviceFromProvider(p gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	return device, queue, nil
}

// NewBuilderFromProvider creates a builder backed by the HAL device and
// queue of a shared device provider.
func NewBuilderFromProvider(p gpucontext.DeviceProvider, cfg Config) (*Builder, error) {
	device, queue, err := DeviceFromProvider(p)
	if err != nil {
		return nil, err
	}
	return NewBuilder(device, queue, cfg)
}
