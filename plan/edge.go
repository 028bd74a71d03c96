package plan

import "github.com/gogpu/rendergraph"

// Edge is one producer-to-consumer synchronization relationship between two
// passes.
//
// For resource edges (DependencyOnly false), Resource names a usage present
// in both passes' metadata, ProducerState is the producer's last recorded
// state for the resource, and ConsumerState is derived from the consuming
// usage. Dependency-only edges carry an empty Resource, a neutral
// TransferDestination placeholder type, and generic states derived from
// each pass's stage classification; they exist solely to preserve an
// explicit ordering constraint that resource inference did not already
// represent.
type Edge struct {
	// Producer is the pass index that must complete first.
	Producer int

	// Consumer is the pass index that depends on the producer.
	Consumer int

	// Resource is the logical resource name, empty for dependency-only
	// edges.
	Resource string

	// Type is the consumer-side resource type.
	Type rendergraph.ResourceType

	// ProducerState is the synchronization state on the producer side.
	ProducerState State

	// ConsumerState is the synchronization state on the consumer side.
	ConsumerState State

	// DependencyOnly marks an edge preserved from an explicit dependency
	// with no inferred resource relationship.
	DependencyOnly bool
}

// Info is the immutable result of a planner run: the full edge list plus a
// consumer-indexed lookup. Info is never mutated after construction and is
// safe for unrestricted concurrent reads.
type Info struct {
	edges      []Edge
	byConsumer map[int][]Edge
}

// emptyInfo is the shared result for empty inputs. No passes means no
// edges; returning the singleton keeps the empty case allocation-free.
var emptyInfo = &Info{}

// newInfo wraps an edge list and builds the consumer index.
func newInfo(edges []Edge) *Info {
	if len(edges) == 0 {
		return emptyInfo
	}
	byConsumer := make(map[int][]Edge)
	for _, e := range edges {
		byConsumer[e.Consumer] = append(byConsumer[e.Consumer], e)
	}
	return &Info{edges: edges, byConsumer: byConsumer}
}

// Edges returns the full edge list in emission order. The slice is shared;
// callers must not modify it.
func (i *Info) Edges() []Edge { return i.edges }

// Len returns the number of edges.
func (i *Info) Len() int { return len(i.edges) }

// EdgesForPass returns the edges whose consumer is the given pass index, in
// emission order. The slice is shared; callers must not modify it.
func (i *Info) EdgesForPass(consumer int) []Edge { return i.byConsumer[consumer] }
