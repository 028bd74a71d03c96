package describe

import "github.com/gogpu/rendergraph"

// PassDescriber is implemented by rendering commands that participate in a
// describe walk. DescribeRenderPass is invoked once per walk, in chain
// order; the command declares its resource usages and dependencies against
// the context and may push or pop render targets to model target-scoped
// command groups.
type PassDescriber interface {
	DescribeRenderPass(ctx *Context)
}

// DescriberFunc adapts a plain function to the PassDescriber interface.
type DescriberFunc func(ctx *Context)

// DescribeRenderPass calls f.
func (f DescriberFunc) DescribeRenderPass(ctx *Context) { f(ctx) }

// Walk runs one describe walk over the command chain and returns the frozen
// pass list. Commands are visited in chain order; nil entries are skipped.
//
// Each frame's description is authoritative from scratch: Walk builds a
// fresh collection, so nothing carries over from a previous walk.
func Walk(chain ...PassDescriber) rendergraph.PassList {
	ctx := NewContext(nil)
	for _, cmd := range chain {
		if cmd == nil {
			continue
		}
		cmd.DescribeRenderPass(ctx)
	}
	return ctx.collection.Build()
}
