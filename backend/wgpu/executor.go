//go:build !nogpu

// Package wgpu provides a HAL-backed executor for hosts that share a GPU
// device through the gpucontext ecosystem.
//
// The executor does not encode GPU commands itself; pass encoding stays
// with the host. It owns the ordering decision: passes are submitted
// in planner order, and the host's EncodeFunc receives each pass together
// with its incoming synchronization edges so it can insert whatever
// barriers or layout transitions the HAL requires.
package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend"
	"github.com/gogpu/rendergraph/plan"
)

// init registers the wgpu executor on package import. The instance starts
// without a device; hosts attach one via SetDeviceProvider.
func init() {
	backend.Register(backend.WGPU, func() backend.Executor {
		return New(nil, nil)
	})
}

// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// rendergraph-specific name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// EncodeFunc encodes one pass. It runs after the pass's commands have
// executed their CPU-side work, with the incoming synchronization edges
// the host must realize as barriers before the pass's GPU work.
type EncodeFunc func(pass rendergraph.Pass, incoming []plan.Edge) error

// Executor submits passes in planner order against a shared HAL device.
type Executor struct {
	provider DeviceHandle
	device   hal.Device
	queue    hal.Queue
	encode   EncodeFunc

	initialized bool
}

// New creates a wgpu executor. The encode function may be nil, in which
// case the executor only orders and runs commands.
func New(provider DeviceHandle, encode EncodeFunc) *Executor {
	return &Executor{provider: provider, encode: encode}
}

// SetDeviceProvider switches the executor to a shared GPU device. The
// provider must additionally implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func (e *Executor) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	e.device = device
	e.queue = queue
	if dp, ok := provider.(DeviceHandle); ok {
		e.provider = dp
	}
	return nil
}

// Device returns the shared HAL device, or nil before SetDeviceProvider.
func (e *Executor) Device() hal.Device { return e.device }

// Queue returns the shared HAL queue, or nil before SetDeviceProvider.
func (e *Executor) Queue() hal.Queue { return e.queue }

// Name returns the executor identifier.
func (e *Executor) Name() string { return backend.WGPU }

// Init initializes the executor.
func (e *Executor) Init() error {
	e.initialized = true
	return nil
}

// Close releases executor resources. The shared device belongs to the
// host; Close does not destroy it.
func (e *Executor) Close() {
	e.initialized = false
}

// Execute runs the chain grouped by pass in planner order, invoking the
// encode function per pass with its incoming edges.
func (e *Executor) Execute(chain []backend.Command, passes rendergraph.PassList, info *plan.Info) error {
	if !e.initialized {
		return backend.ErrNotInitialized
	}

	byPass := make(map[int][]backend.Command)
	for _, cmd := range chain {
		if cmd == nil {
			continue
		}
		byPass[cmd.PassIndex()] = append(byPass[cmd.PassIndex()], cmd)
	}

	for _, idx := range plan.TopologicalSort(passes) {
		for _, cmd := range byPass[idx] {
			if err := cmd.Execute(); err != nil {
				return fmt.Errorf("wgpu: pass %d: %w", idx, err)
			}
		}
		if e.encode != nil {
			pass := passes.ByIndex(idx)
			if err := e.encode(*pass, info.EdgesForPass(idx)); err != nil {
				return fmt.Errorf("wgpu: encode pass %d: %w", idx, err)
			}
		}
	}
	return nil
}
