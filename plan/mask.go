package plan

import "strings"

// StageMask is a bit set of pipeline stages, in the style of explicit GPU
// APIs. Immediate-mode backends ignore it; barrier backends use it to scope
// execution dependencies.
type StageMask uint32

const (
	// StageDrawIndirect covers indirect argument fetch.
	StageDrawIndirect StageMask = 1 << iota

	// StageVertexInput covers vertex and index buffer fetch.
	StageVertexInput

	// StageVertexShader covers vertex shader execution.
	StageVertexShader

	// StageFragmentShader covers fragment shader execution.
	StageFragmentShader

	// StageEarlyFragmentTests covers pre-shading depth/stencil tests.
	StageEarlyFragmentTests

	// StageLateFragmentTests covers post-shading depth/stencil tests.
	StageLateFragmentTests

	// StageColorAttachmentOutput covers color attachment writes and blends.
	StageColorAttachmentOutput

	// StageComputeShader covers compute shader execution.
	StageComputeShader

	// StageTransfer covers copy and blit operations.
	StageTransfer
)

// stageMaskNames lists bit names in bit order for String.
var stageMaskNames = [...]string{
	"DrawIndirect",
	"VertexInput",
	"VertexShader",
	"FragmentShader",
	"EarlyFragmentTests",
	"LateFragmentTests",
	"ColorAttachmentOutput",
	"ComputeShader",
	"Transfer",
}

// String returns a pipe-separated list of set stage bits.
func (m StageMask) String() string { return flagString(uint32(m), stageMaskNames[:]) }

// AccessMask is a bit set of memory access types.
type AccessMask uint32

const (
	// AccessIndirectCommandRead covers indirect argument reads.
	AccessIndirectCommandRead AccessMask = 1 << iota

	// AccessIndexRead covers index buffer reads.
	AccessIndexRead

	// AccessVertexAttributeRead covers vertex buffer reads.
	AccessVertexAttributeRead

	// AccessUniformRead covers uniform buffer reads.
	AccessUniformRead

	// AccessShaderRead covers sampled/storage reads from shaders.
	AccessShaderRead

	// AccessShaderWrite covers storage writes from shaders.
	AccessShaderWrite

	// AccessColorAttachmentRead covers color attachment reads (blending).
	AccessColorAttachmentRead

	// AccessColorAttachmentWrite covers color attachment writes.
	AccessColorAttachmentWrite

	// AccessDepthStencilRead covers depth/stencil attachment reads.
	AccessDepthStencilRead

	// AccessDepthStencilWrite covers depth/stencil attachment writes.
	AccessDepthStencilWrite

	// AccessTransferRead covers copy/blit source reads.
	AccessTransferRead

	// AccessTransferWrite covers copy/blit destination writes.
	AccessTransferWrite

	// AccessMemoryRead is the generic fallback access. State resolution
	// guarantees every edge carries at least one access bit; unmatched
	// combinations land here instead of zero.
	AccessMemoryRead
)

// accessMaskNames lists bit names in bit order for String.
var accessMaskNames = [...]string{
	"IndirectCommandRead",
	"IndexRead",
	"VertexAttributeRead",
	"UniformRead",
	"ShaderRead",
	"ShaderWrite",
	"ColorAttachmentRead",
	"ColorAttachmentWrite",
	"DepthStencilRead",
	"DepthStencilWrite",
	"TransferRead",
	"TransferWrite",
	"MemoryRead",
}

// String returns a pipe-separated list of set access bits.
func (m AccessMask) String() string { return flagString(uint32(m), accessMaskNames[:]) }

// flagString formats a bit set using the given bit-ordered names.
func flagString(bits uint32, names []string) string {
	if bits == 0 {
		return "None"
	}
	var b strings.Builder
	for i, name := range names {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	return b.String()
}

// ImageLayout is the GPU image layout a usage expects. Buffer-like
// resources have no layout and carry LayoutNone.
type ImageLayout uint8

const (
	// LayoutNone marks the absence of an image layout.
	LayoutNone ImageLayout = iota

	// LayoutGeneral is the all-purpose layout used by storage images.
	LayoutGeneral

	// LayoutColorAttachment is optimal for color attachment access.
	LayoutColorAttachment

	// LayoutDepthStencilAttachment is optimal for depth/stencil access.
	LayoutDepthStencilAttachment

	// LayoutShaderReadOnly is optimal for sampled reads.
	LayoutShaderReadOnly

	// LayoutTransferSource is optimal for copy/blit sources.
	LayoutTransferSource

	// LayoutTransferDestination is optimal for copy/blit destinations.
	LayoutTransferDestination
)

// imageLayoutNames maps ImageLayout values to their string representation.
var imageLayoutNames = [...]string{
	LayoutNone:                   "None",
	LayoutGeneral:                "General",
	LayoutColorAttachment:        "ColorAttachment",
	LayoutDepthStencilAttachment: "DepthStencilAttachment",
	LayoutShaderReadOnly:         "ShaderReadOnly",
	LayoutTransferSource:         "TransferSource",
	LayoutTransferDestination:    "TransferDestination",
}

// String returns the string representation of an ImageLayout.
func (l ImageLayout) String() string {
	if int(l) < len(imageLayoutNames) {
		return imageLayoutNames[l]
	}
	return "Unknown"
}
