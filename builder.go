package rendergraph

// PassBuilder is a fluent façade over a single pass's metadata. Producers
// use it to declare attachment, texture, and buffer usages plus explicit
// dependencies without touching the mutable internals.
//
// Every method silently no-ops on a blank resource name; callers routinely
// pass through optional names that may be unresolved, and an incomplete
// description must never abort the describe walk. Declaring a usage never
// removes a previously recorded one: the usage list is strictly additive
// within a describe cycle.
//
// Each helper fixes a default (access, loadOp, storeOp) tuple appropriate
// to its semantic role; the Ops variants override the defaults.
type PassBuilder struct {
	meta *PassMetadata
}

// Metadata returns the underlying pass metadata for inspection.
func (b *PassBuilder) Metadata() *PassMetadata { return b.meta }

// WithName overwrites the pass display name. Blank names are ignored.
func (b *PassBuilder) WithName(name string) *PassBuilder {
	if name != "" {
		b.meta.name = name
	}
	return b
}

// WithStage overwrites the stage classification and re-applies the default
// descriptor schemas for the new stage.
func (b *PassBuilder) WithStage(stage PassStage) *PassBuilder {
	b.meta.stage = stage
	b.meta.applyDefaultSchemas()
	return b
}

// DependsOn records explicit ordering constraints on the given producer
// passes. Self-dependencies are silently ignored.
func (b *PassBuilder) DependsOn(indices ...int) *PassBuilder {
	for _, idx := range indices {
		b.meta.addDependency(idx)
	}
	return b
}

// UseDescriptorSchema records a descriptor schema requirement.
func (b *PassBuilder) UseDescriptorSchema(schema string) *PassBuilder {
	b.meta.addSchema(schema)
	return b
}

// Use records a fully specified resource usage. The typed helpers below are
// the common path; Use is the escape hatch for unusual combinations.
func (b *PassBuilder) Use(name string, typ ResourceType, access AccessMode, load LoadOp, store StoreOp) *PassBuilder {
	b.meta.addUsage(ResourceUsage{
		Name:    name,
		Type:    typ,
		Access:  access,
		LoadOp:  load,
		StoreOp: store,
	})
	return b
}

// UseColorAttachment declares a color attachment write with load-and-store
// defaults.
func (b *PassBuilder) UseColorAttachment(name string) *PassBuilder {
	return b.Use(name, ResourceColorAttachment, AccessWrite, LoadOpLoad, StoreOpStore)
}

// UseColorAttachmentOps declares a color attachment write with explicit
// load/store ops.
func (b *PassBuilder) UseColorAttachmentOps(name string, load LoadOp, store StoreOp) *PassBuilder {
	return b.Use(name, ResourceColorAttachment, AccessWrite, load, store)
}

// UseDepthAttachment declares a read/write depth attachment with
// load-and-store defaults.
func (b *PassBuilder) UseDepthAttachment(name string) *PassBuilder {
	return b.Use(name, ResourceDepthAttachment, AccessReadWrite, LoadOpLoad, StoreOpStore)
}

// UseDepthAttachmentOps declares a depth attachment with explicit access
// and load/store ops. Pass AccessRead for depth-test-only usage.
func (b *PassBuilder) UseDepthAttachmentOps(name string, access AccessMode, load LoadOp, store StoreOp) *PassBuilder {
	return b.Use(name, ResourceDepthAttachment, access, load, store)
}

// UseStencilAttachment declares a read/write stencil attachment with
// load-and-store defaults.
func (b *PassBuilder) UseStencilAttachment(name string) *PassBuilder {
	return b.Use(name, ResourceStencilAttachment, AccessReadWrite, LoadOpLoad, StoreOpStore)
}

// UseStencilAttachmentOps declares a stencil attachment with explicit
// access and load/store ops.
func (b *PassBuilder) UseStencilAttachmentOps(name string, access AccessMode, load LoadOp, store StoreOp) *PassBuilder {
	return b.Use(name, ResourceStencilAttachment, access, load, store)
}

// UseResolveAttachment declares an MSAA resolve destination: write-only,
// don't-care load (the resolve overwrites every texel), store.
func (b *PassBuilder) UseResolveAttachment(name string) *PassBuilder {
	return b.Use(name, ResourceResolveAttachment, AccessWrite, LoadOpDontCare, StoreOpStore)
}

// SampleTexture declares a sampled texture read.
func (b *PassBuilder) SampleTexture(name string) *PassBuilder {
	return b.Use(name, ResourceSampledTexture, AccessRead, LoadOpLoad, StoreOpStore)
}

// SampleStorageTexture declares a storage texture read.
func (b *PassBuilder) SampleStorageTexture(name string) *PassBuilder {
	return b.Use(name, ResourceStorageTexture, AccessRead, LoadOpLoad, StoreOpStore)
}

// ReadWriteTexture declares a storage texture read/write.
func (b *PassBuilder) ReadWriteTexture(name string) *PassBuilder {
	return b.Use(name, ResourceStorageTexture, AccessReadWrite, LoadOpLoad, StoreOpStore)
}

// ReadBuffer declares a uniform buffer read.
func (b *PassBuilder) ReadBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceUniformBuffer, AccessRead, LoadOpLoad, StoreOpStore)
}

// WriteBuffer declares a storage buffer write.
func (b *PassBuilder) WriteBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceStorageBuffer, AccessWrite, LoadOpLoad, StoreOpStore)
}

// ReadWriteBuffer declares a storage buffer read/write.
func (b *PassBuilder) ReadWriteBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceStorageBuffer, AccessReadWrite, LoadOpLoad, StoreOpStore)
}

// UseBufferOps declares a buffer usage with an explicit buffer type and
// access mode.
func (b *PassBuilder) UseBufferOps(name string, typ ResourceType, access AccessMode) *PassBuilder {
	return b.Use(name, typ, access, LoadOpLoad, StoreOpStore)
}

// UseVertexBuffer declares a vertex buffer read.
func (b *PassBuilder) UseVertexBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceVertexBuffer, AccessRead, LoadOpLoad, StoreOpStore)
}

// UseIndexBuffer declares an index buffer read.
func (b *PassBuilder) UseIndexBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceIndexBuffer, AccessRead, LoadOpLoad, StoreOpStore)
}

// UseIndirectBuffer declares an indirect argument buffer read.
func (b *PassBuilder) UseIndirectBuffer(name string) *PassBuilder {
	return b.Use(name, ResourceIndirectBuffer, AccessRead, LoadOpLoad, StoreOpStore)
}

// TransferFrom declares a copy/blit source read.
func (b *PassBuilder) TransferFrom(name string) *PassBuilder {
	return b.Use(name, ResourceTransferSource, AccessRead, LoadOpLoad, StoreOpStore)
}

// TransferTo declares a copy/blit destination write. The destination is
// overwritten, so the default load op is don't-care.
func (b *PassBuilder) TransferTo(name string) *PassBuilder {
	return b.Use(name, ResourceTransferDestination, AccessWrite, LoadOpDontCare, StoreOpStore)
}
