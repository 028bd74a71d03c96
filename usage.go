package rendergraph

import "github.com/gogpu/gputypes"

// ResourceType classifies how a logical resource is consumed by a pass.
// It determines the pipeline stages, access masks, and (for images) the
// layout the synchronization planner derives for each edge.
type ResourceType uint8

const (
	// Attachment types
	ResourceColorAttachment   ResourceType = iota // Render target color output
	ResourceDepthAttachment                       // Depth aspect of a render target
	ResourceStencilAttachment                     // Stencil aspect of a render target
	ResourceResolveAttachment                     // MSAA resolve destination

	// Texture types
	ResourceSampledTexture // Texture read through a sampler
	ResourceStorageTexture // Storage image (read and/or write)

	// Buffer types
	ResourceUniformBuffer  // Uniform/constant buffer
	ResourceStorageBuffer  // Storage buffer
	ResourceVertexBuffer   // Vertex input buffer
	ResourceIndexBuffer    // Index input buffer
	ResourceIndirectBuffer // Indirect draw/dispatch argument buffer

	// Transfer types
	ResourceTransferSource      // Copy/blit source
	ResourceTransferDestination // Copy/blit destination
)

// resourceTypeNames maps ResourceType values to their string representation.
var resourceTypeNames = [...]string{
	ResourceColorAttachment:     "ColorAttachment",
	ResourceDepthAttachment:     "DepthAttachment",
	ResourceStencilAttachment:   "StencilAttachment",
	ResourceResolveAttachment:   "ResolveAttachment",
	ResourceSampledTexture:      "SampledTexture",
	ResourceStorageTexture:      "StorageTexture",
	ResourceUniformBuffer:       "UniformBuffer",
	ResourceStorageBuffer:       "StorageBuffer",
	ResourceVertexBuffer:        "VertexBuffer",
	ResourceIndexBuffer:         "IndexBuffer",
	ResourceIndirectBuffer:      "IndirectBuffer",
	ResourceTransferSource:      "TransferSource",
	ResourceTransferDestination: "TransferDestination",
}

// String returns the string representation of a ResourceType.
func (t ResourceType) String() string {
	if int(t) < len(resourceTypeNames) {
		return resourceTypeNames[t]
	}
	return "Unknown"
}

// IsAttachment reports whether the resource type is a render-pass attachment
// (color, depth, stencil, or resolve).
func (t ResourceType) IsAttachment() bool {
	switch t {
	case ResourceColorAttachment, ResourceDepthAttachment,
		ResourceStencilAttachment, ResourceResolveAttachment:
		return true
	default:
		return false
	}
}

// IsBuffer reports whether the resource type is buffer-like. Buffer-like
// resources never carry an image layout on synchronization edges.
func (t ResourceType) IsBuffer() bool {
	switch t {
	case ResourceUniformBuffer, ResourceStorageBuffer, ResourceVertexBuffer,
		ResourceIndexBuffer, ResourceIndirectBuffer:
		return true
	default:
		return false
	}
}

// AccessMode describes the read/write intent of a resource usage.
type AccessMode uint8

const (
	// AccessRead declares a read-only usage.
	AccessRead AccessMode = iota

	// AccessWrite declares a write-only usage.
	AccessWrite

	// AccessReadWrite declares a combined read/write usage.
	AccessReadWrite
)

// accessModeNames maps AccessMode values to their string representation.
var accessModeNames = [...]string{
	AccessRead:      "Read",
	AccessWrite:     "Write",
	AccessReadWrite: "ReadWrite",
}

// String returns the string representation of an AccessMode.
func (a AccessMode) String() string {
	if int(a) < len(accessModeNames) {
		return accessModeNames[a]
	}
	return "Unknown"
}

// Reads reports whether the access mode includes reading.
func (a AccessMode) Reads() bool { return a == AccessRead || a == AccessReadWrite }

// Writes reports whether the access mode includes writing.
func (a AccessMode) Writes() bool { return a == AccessWrite || a == AccessReadWrite }

// LoadOp describes what happens to an attachment's contents at the start of
// a pass. Unlike gputypes.LoadOp this includes DontCare, which explicit APIs
// expose directly; use GPU to convert for WebGPU-shaped backends.
type LoadOp uint8

const (
	// LoadOpLoad preserves the existing contents.
	LoadOpLoad LoadOp = iota

	// LoadOpClear clears the attachment to its clear value.
	LoadOpClear

	// LoadOpDontCare leaves the initial contents undefined.
	LoadOpDontCare
)

// loadOpNames maps LoadOp values to their string representation.
var loadOpNames = [...]string{
	LoadOpLoad:     "Load",
	LoadOpClear:    "Clear",
	LoadOpDontCare: "DontCare",
}

// String returns the string representation of a LoadOp.
func (op LoadOp) String() string {
	if int(op) < len(loadOpNames) {
		return loadOpNames[op]
	}
	return "Unknown"
}

// GPU converts to the WebGPU load op. WebGPU has no DontCare; it maps to
// Clear, which is the cheaper of the two legal choices on tiled hardware.
func (op LoadOp) GPU() gputypes.LoadOp {
	if op == LoadOpLoad {
		return gputypes.LoadOpLoad
	}
	return gputypes.LoadOpClear
}

// StoreOp describes what happens to an attachment's contents at the end of
// a pass.
type StoreOp uint8

const (
	// StoreOpStore persists the pass's results.
	StoreOpStore StoreOp = iota

	// StoreOpDontCare discards the pass's results.
	StoreOpDontCare
)

// storeOpNames maps StoreOp values to their string representation.
var storeOpNames = [...]string{
	StoreOpStore:    "Store",
	StoreOpDontCare: "DontCare",
}

// String returns the string representation of a StoreOp.
func (op StoreOp) String() string {
	if int(op) < len(storeOpNames) {
		return storeOpNames[op]
	}
	return "Unknown"
}

// GPU converts to the WebGPU store op. DontCare maps to Discard.
func (op StoreOp) GPU() gputypes.StoreOp {
	if op == StoreOpStore {
		return gputypes.StoreOpStore
	}
	return gputypes.StoreOpDiscard
}

// ResourceUsage is an immutable record of how one pass touches one named
// logical resource. Usages are created once when declared through a
// PassBuilder and never mutated afterward.
//
// Name is an opaque key supplied by the resource registry; this library
// never resolves it to an actual GPU handle.
type ResourceUsage struct {
	// Name is the logical resource name. Always non-empty for recorded
	// usages; builders silently drop blank names.
	Name string

	// Type classifies the usage for stage/access/layout derivation.
	Type ResourceType

	// Access is the read/write intent.
	Access AccessMode

	// LoadOp applies to attachment usages.
	LoadOp LoadOp

	// StoreOp applies to attachment usages.
	StoreOp StoreOp
}
