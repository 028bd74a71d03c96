package describe

import (
	"hash/fnv"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// SyntheticPassLimit is the exclusive upper bound of the index range
// reserved for synthetic passes. Caller-assigned indices must stay at or
// above this value; UserPassIndex maps a zero-based slot into the
// caller-assigned range.
const SyntheticPassLimit = 100000

// UserPassIndex converts a zero-based caller pass slot into a pass index
// outside the synthetic range.
func UserPassIndex(slot int) int {
	if slot < 0 {
		return SyntheticPassLimit
	}
	return SyntheticPassLimit + slot
}

// Context is the single mutable cursor over describe-time state: the
// metadata collection being filled in, the render target binding stack, and
// the synthetic pass table. One Context serves one walk of one command
// chain on one thread.
type Context struct {
	collection *rendergraph.PassMetadataCollection

	targets []*RenderTargetBinding

	// Synthetic pass identity is key-based, not call-site-based: the same
	// key always resolves to the same index within one context.
	synthetic map[string]int
	taken     map[int]string
}

// NewContext creates a describe context filling in the given collection.
// A nil collection gets a fresh one.
func NewContext(collection *rendergraph.PassMetadataCollection) *Context {
	if collection == nil {
		collection = rendergraph.NewPassMetadataCollection()
	}
	return &Context{
		collection: collection,
		synthetic:  make(map[string]int),
		taken:      make(map[int]string),
	}
}

// Collection returns the metadata collection the walk is filling in.
func (c *Context) Collection() *rendergraph.PassMetadataCollection {
	return c.collection
}

// ForPass is a convenience forwarding to the collection's ForPass.
func (c *Context) ForPass(index int, name string, stage rendergraph.PassStage) *rendergraph.PassBuilder {
	return c.collection.ForPass(index, name, stage)
}

// TargetScope is the guard value returned by PushRenderTarget. Calling End
// pops the binding that the push created, so target tracking cannot be
// unbalanced by an early return in a producer. End on the zero value is a
// no-op.
type TargetScope struct {
	ctx    *Context
	closed bool
}

// End pops the render target pushed by the matching PushRenderTarget call.
// End is idempotent.
func (s *TargetScope) End() {
	if s.ctx == nil || s.closed {
		return
	}
	s.closed = true
	s.ctx.PopRenderTarget()
}

// PushRenderTarget pushes a render target binding and returns a scope guard
// whose End pops it. A blank name is a no-op that returns an inert guard.
//
// The clear flags are ANDed with writes; see RenderTargetBinding.
func (c *Context) PushRenderTarget(name string, writes, clearColor, clearDepth, clearStencil bool) *TargetScope {
	return c.PushRenderTargetValue(name, writes, clearColor, clearDepth, clearStencil, gputypes.Color{})
}

// PushRenderTargetValue is PushRenderTarget with an explicit clear value.
func (c *Context) PushRenderTargetValue(name string, writes, clearColor, clearDepth, clearStencil bool, clearValue gputypes.Color) *TargetScope {
	if name == "" {
		return &TargetScope{}
	}
	c.targets = append(c.targets, newRenderTargetBinding(name, writes, clearColor, clearDepth, clearStencil, clearValue))
	return &TargetScope{ctx: c}
}

// PopRenderTarget pops the current render target binding. A pop on an
// empty stack is a no-op.
func (c *Context) PopRenderTarget() {
	if len(c.targets) == 0 {
		return
	}
	c.targets = c.targets[:len(c.targets)-1]
}

// CurrentRenderTarget returns the top of the binding stack, or nil when no
// target is bound.
func (c *Context) CurrentRenderTarget() *RenderTargetBinding {
	if len(c.targets) == 0 {
		return nil
	}
	return c.targets[len(c.targets)-1]
}

// GetOrCreateSyntheticPass returns a stable pass index for a pass authored
// without a caller-assigned slot, creating the metadata entry on first use.
// Identity is key-based: the same key always yields the same index within
// this context. Indices are drawn from [0, SyntheticPassLimit) by hashing
// the key, so they never collide with caller-assigned indices.
func (c *Context) GetOrCreateSyntheticPass(key string, stage rendergraph.PassStage) int {
	if key == "" {
		return -1
	}
	if idx, ok := c.synthetic[key]; ok {
		// Stage still overwrites on repeated description, matching ForPass
		// merge semantics.
		c.collection.ForPass(idx, "", stage)
		return idx
	}

	idx := c.syntheticIndexFor(key)
	c.synthetic[key] = idx
	c.taken[idx] = key
	c.collection.ForPass(idx, key, stage)
	return idx
}

// syntheticIndexFor hashes the key into the reserved range, probing
// linearly past indices already taken by other keys.
func (c *Context) syntheticIndexFor(key string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	idx := int(h.Sum64() % SyntheticPassLimit)
	for {
		owner, used := c.taken[idx]
		if !used || owner == key {
			return idx
		}
		idx = (idx + 1) % SyntheticPassLimit
	}
}

// BlitPass synthesizes a transfer pass copying src into dst and returns its
// index. Blank src or dst drops the corresponding usage but the pass is
// still created, keeping the index stable for later calls with resolved
// names.
func (c *Context) BlitPass(key, src, dst string) int {
	idx := c.GetOrCreateSyntheticPass(key, rendergraph.StageTransfer)
	if idx < 0 {
		return idx
	}
	c.collection.ForPass(idx, "", rendergraph.StageTransfer).
		TransferFrom(src).
		TransferTo(dst)
	return idx
}

// FullscreenQuadPass synthesizes a graphics pass sampling src and writing a
// color attachment. When target is blank, the currently bound render target
// supplies both the attachment name and the load op (consuming a pending
// clear); with no bound target the attachment usage is dropped.
func (c *Context) FullscreenQuadPass(key, src, target string) int {
	idx := c.GetOrCreateSyntheticPass(key, rendergraph.StageGraphics)
	if idx < 0 {
		return idx
	}

	b := c.collection.ForPass(idx, "", rendergraph.StageGraphics)
	b.SampleTexture(src)

	load := rendergraph.LoadOpLoad
	if target == "" {
		if cur := c.CurrentRenderTarget(); cur != nil {
			target = cur.Name()
			load = cur.ConsumeColorLoadOp()
		}
	}
	b.UseColorAttachmentOps(target, load, rendergraph.StoreOpStore)
	return idx
}
