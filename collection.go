package rendergraph

import (
	"cmp"
	"slices"
	"sort"
)

// PassMetadataCollection is the mutable registry of pass metadata built up
// during a describe walk. Pass entries are created idempotently on first
// reference and merged when multiple commands describe against the same
// logical pass index.
//
// The collection follows an accumulate-then-freeze pattern: mutation happens
// only through PassBuilder values handed out by ForPass, and Build produces
// an immutable PassList snapshot for the planner. The live collection is
// never handed to downstream consumers.
//
// A collection is owned by a single describe walk on one thread; it must be
// externally synchronized if shared.
type PassMetadataCollection struct {
	passes map[int]*PassMetadata
}

// NewPassMetadataCollection creates an empty collection.
func NewPassMetadataCollection() *PassMetadataCollection {
	return &PassMetadataCollection{
		passes: make(map[int]*PassMetadata),
	}
}

// Len returns the number of passes described so far.
func (c *PassMetadataCollection) Len() int { return len(c.passes) }

// ForPass returns a builder bound to the metadata for the given pass index,
// creating the entry if it does not exist.
//
// Merge semantics when the pass already exists: a non-blank name overwrites
// the stored name, and stage always overwrites. Repeated calls are
// idempotent for stage, but when two commands describing the same pass index
// disagree, the last caller's stage wins. Default descriptor schemas are
// re-applied on every call, so schema membership can only grow.
func (c *PassMetadataCollection) ForPass(index int, name string, stage PassStage) *PassBuilder {
	m, ok := c.passes[index]
	if !ok {
		m = newPassMetadata(index, stage)
		c.passes[index] = m
	}
	if name != "" {
		m.name = name
	}
	m.stage = stage
	m.applyDefaultSchemas()
	return &PassBuilder{meta: m}
}

// Metadata returns the live metadata for a pass index, or nil if the pass
// has not been described. Intended for inspection; mutation goes through
// ForPass.
func (c *PassMetadataCollection) Metadata(index int) *PassMetadata {
	return c.passes[index]
}

// Build freezes the collection into an immutable PassList ordered by
// ascending pass index. The snapshot shares no mutable state with the
// collection: describing further passes afterward does not alter it, and
// the result is safe for unrestricted concurrent reads.
func (c *PassMetadataCollection) Build() PassList {
	if len(c.passes) == 0 {
		return nil
	}

	indices := make([]int, 0, len(c.passes))
	for idx := range c.passes {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	list := make(PassList, 0, len(indices))
	for _, idx := range indices {
		m := c.passes[idx]

		deps := make([]int, 0, len(m.deps))
		for d := range m.deps {
			deps = append(deps, d)
		}
		sort.Ints(deps)

		schemas := make([]string, 0, len(m.schemas))
		for s := range m.schemas {
			schemas = append(schemas, s)
		}
		sort.Strings(schemas)

		list = append(list, Pass{
			Index:             m.index,
			Name:              m.name,
			Stage:             m.stage,
			Usages:            slices.Clone(m.usages),
			Dependencies:      deps,
			DescriptorSchemas: schemas,
		})
	}
	return list
}

// Pass is the frozen snapshot of one pass's metadata produced by Build.
// Dependencies and DescriptorSchemas are sorted ascending so that two
// snapshots of identical descriptions compare byte-identical; Usages
// preserve declaration order, which the planner's inference depends on.
type Pass struct {
	// Index is the stable pass identity.
	Index int

	// Name is the display name, possibly empty.
	Name string

	// Stage is the stage classification.
	Stage PassStage

	// Usages are the declared resource usages in declaration order.
	Usages []ResourceUsage

	// Dependencies are explicit producer pass indices, sorted ascending.
	Dependencies []int

	// DescriptorSchemas are required schema names, sorted ascending.
	DescriptorSchemas []string
}

// PassList is an immutable ordered set of passes, ascending by Index.
type PassList []Pass

// ByIndex returns the pass with the given index, or nil if absent.
// Lookup is a binary search over the sorted list.
func (l PassList) ByIndex(index int) *Pass {
	i, ok := slices.BinarySearchFunc(l, index, func(p Pass, idx int) int {
		return cmp.Compare(p.Index, idx)
	})
	if !ok {
		return nil
	}
	return &l[i]
}
