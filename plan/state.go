package plan

import "github.com/gogpu/rendergraph"

// State is the synchronization state on one side of an edge: which pipeline
// stages touch the resource, with what memory accesses, and in which image
// layout (LayoutNone for buffers).
type State struct {
	Stages StageMask
	Access AccessMask
	Layout ImageLayout
}

// ResolveState derives the synchronization state for one resource usage
// inside a pass with the given stage classification.
//
// The stage mask depends jointly on the resource type and the pass's own
// stage: a sampled read inside a compute pass maps to the compute-shader
// stage, the same read inside a graphics pass maps to vertex+fragment. The
// access mask depends on the resource type and the declared intent, and is
// never zero. The layout is derived purely from the resource type.
func ResolveState(u rendergraph.ResourceUsage, stage rendergraph.PassStage) State {
	return State{
		Stages: stagesFor(u.Type, stage),
		Access: accessFor(u.Type, u.Access),
		Layout: layoutFor(u.Type),
	}
}

// shaderStages maps a pass stage to the stages its shader-visible resources
// occupy.
func shaderStages(stage rendergraph.PassStage) StageMask {
	switch stage {
	case rendergraph.StageCompute:
		return StageComputeShader
	case rendergraph.StageTransfer:
		return StageTransfer
	default:
		return StageVertexShader | StageFragmentShader
	}
}

// stagesFor is total over ResourceType so that adding a variant is a
// compile-visible exercise here, not a silent fallthrough.
func stagesFor(typ rendergraph.ResourceType, stage rendergraph.PassStage) StageMask {
	switch typ {
	case rendergraph.ResourceColorAttachment, rendergraph.ResourceResolveAttachment:
		return StageColorAttachmentOutput
	case rendergraph.ResourceDepthAttachment, rendergraph.ResourceStencilAttachment:
		return StageEarlyFragmentTests | StageLateFragmentTests
	case rendergraph.ResourceSampledTexture, rendergraph.ResourceStorageTexture,
		rendergraph.ResourceUniformBuffer, rendergraph.ResourceStorageBuffer:
		return shaderStages(stage)
	case rendergraph.ResourceVertexBuffer, rendergraph.ResourceIndexBuffer:
		return StageVertexInput
	case rendergraph.ResourceIndirectBuffer:
		return StageDrawIndirect
	case rendergraph.ResourceTransferSource, rendergraph.ResourceTransferDestination:
		return StageTransfer
	default:
		return shaderStages(stage)
	}
}

// accessFor is total over ResourceType. Unmatched combinations fall back to
// AccessMemoryRead so every edge carries at least one access bit.
func accessFor(typ rendergraph.ResourceType, access rendergraph.AccessMode) AccessMask {
	var m AccessMask
	switch typ {
	case rendergraph.ResourceColorAttachment, rendergraph.ResourceResolveAttachment:
		if access.Reads() {
			m |= AccessColorAttachmentRead
		}
		if access.Writes() {
			m |= AccessColorAttachmentWrite
		}
	case rendergraph.ResourceDepthAttachment, rendergraph.ResourceStencilAttachment:
		if access.Reads() {
			m |= AccessDepthStencilRead
		}
		if access.Writes() {
			m |= AccessDepthStencilWrite
		}
	case rendergraph.ResourceSampledTexture, rendergraph.ResourceStorageTexture,
		rendergraph.ResourceStorageBuffer:
		if access.Reads() {
			m |= AccessShaderRead
		}
		if access.Writes() {
			m |= AccessShaderWrite
		}
	case rendergraph.ResourceUniformBuffer:
		if access.Reads() {
			m |= AccessUniformRead
		}
		if access.Writes() {
			m |= AccessShaderWrite
		}
	case rendergraph.ResourceVertexBuffer:
		if access.Reads() {
			m |= AccessVertexAttributeRead
		}
		if access.Writes() {
			m |= AccessShaderWrite
		}
	case rendergraph.ResourceIndexBuffer:
		if access.Reads() {
			m |= AccessIndexRead
		}
		if access.Writes() {
			m |= AccessShaderWrite
		}
	case rendergraph.ResourceIndirectBuffer:
		if access.Reads() {
			m |= AccessIndirectCommandRead
		}
		if access.Writes() {
			m |= AccessShaderWrite
		}
	case rendergraph.ResourceTransferSource:
		m |= AccessTransferRead
	case rendergraph.ResourceTransferDestination:
		m |= AccessTransferWrite
	}
	if m == 0 {
		m = AccessMemoryRead
	}
	return m
}

// layoutFor is total over ResourceType. Buffer-like types have no natural
// image layout.
func layoutFor(typ rendergraph.ResourceType) ImageLayout {
	switch typ {
	case rendergraph.ResourceColorAttachment, rendergraph.ResourceResolveAttachment:
		return LayoutColorAttachment
	case rendergraph.ResourceDepthAttachment, rendergraph.ResourceStencilAttachment:
		return LayoutDepthStencilAttachment
	case rendergraph.ResourceSampledTexture:
		return LayoutShaderReadOnly
	case rendergraph.ResourceStorageTexture:
		return LayoutGeneral
	case rendergraph.ResourceTransferSource:
		return LayoutTransferSource
	case rendergraph.ResourceTransferDestination:
		return LayoutTransferDestination
	default:
		return LayoutNone
	}
}

// genericState derives a state from a pass's stage classification alone.
// Dependency-only edges use it: they preserve ordering for passes with no
// shared resource, so there is no usage to derive a precise state from.
func genericState(stage rendergraph.PassStage) State {
	var stages StageMask
	switch stage {
	case rendergraph.StageCompute:
		stages = StageComputeShader
	case rendergraph.StageTransfer:
		stages = StageTransfer
	default:
		stages = StageVertexShader | StageFragmentShader |
			StageEarlyFragmentTests | StageLateFragmentTests |
			StageColorAttachmentOutput
	}
	return State{
		Stages: stages,
		Access: AccessMemoryRead,
		Layout: LayoutNone,
	}
}
