package describe

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// RenderTargetBinding tracks one entry of the describe-time render target
// stack. It is transient: a binding lives between a push and the matching
// pop and never persists past the walk.
//
// The pending clear flags model the GPU contract that a clear happens only
// on the first pass touching a target within its binding scope. Consume
// transitions Clear to Load exactly once and is idempotent afterward.
type RenderTargetBinding struct {
	name   string
	writes bool

	pendingColorClear   bool
	pendingDepthClear   bool
	pendingStencilClear bool

	clearColor gputypes.Color
}

// newRenderTargetBinding creates a binding. Clear flags are ANDed with
// writes: a target that is not being written never reports a pending clear,
// so read-only bindings cannot produce bogus Clear load ops.
func newRenderTargetBinding(name string, writes, clearColor, clearDepth, clearStencil bool, clearValue gputypes.Color) *RenderTargetBinding {
	return &RenderTargetBinding{
		name:                name,
		writes:              writes,
		pendingColorClear:   clearColor && writes,
		pendingDepthClear:   clearDepth && writes,
		pendingStencilClear: clearStencil && writes,
		clearColor:          clearValue,
	}
}

// Name returns the logical resource name of the bound target.
func (b *RenderTargetBinding) Name() string { return b.name }

// Writes reports whether the binding was pushed for writing.
func (b *RenderTargetBinding) Writes() bool { return b.writes }

// ClearColor returns the clear value recorded at push time. Meaningful only
// while a color clear is pending.
func (b *RenderTargetBinding) ClearColor() gputypes.Color { return b.clearColor }

// ConsumeColorLoadOp returns Clear exactly once if a color clear is
// pending, and Load on every subsequent call.
func (b *RenderTargetBinding) ConsumeColorLoadOp() rendergraph.LoadOp {
	if b.pendingColorClear {
		b.pendingColorClear = false
		return rendergraph.LoadOpClear
	}
	return rendergraph.LoadOpLoad
}

// ConsumeDepthLoadOp returns Clear exactly once if a depth clear is
// pending, and Load on every subsequent call.
func (b *RenderTargetBinding) ConsumeDepthLoadOp() rendergraph.LoadOp {
	if b.pendingDepthClear {
		b.pendingDepthClear = false
		return rendergraph.LoadOpClear
	}
	return rendergraph.LoadOpLoad
}

// ConsumeStencilLoadOp returns Clear exactly once if a stencil clear is
// pending, and Load on every subsequent call.
func (b *RenderTargetBinding) ConsumeStencilLoadOp() rendergraph.LoadOp {
	if b.pendingStencilClear {
		b.pendingStencilClear = false
		return rendergraph.LoadOpClear
	}
	return rendergraph.LoadOpLoad
}
