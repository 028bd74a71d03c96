package plan

import (
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/cache"
)

// Planner turns a frozen pass list into a synchronization Info. The zero
// value is usable; NewPlanner is the conventional constructor.
//
// Build is a pure function of the pass list, so a Planner may be shared
// across frames. An optional cache memoizes results by fingerprint, which
// pays off when descriptions only change on pipeline-configuration changes
// rather than every frame.
type Planner struct {
	cache   *cache.Cache[uint64, *Info]
	onCycle func(deferred []int)
}

// NewPlanner creates a planner with no cache and no cycle hook.
func NewPlanner() *Planner {
	return &Planner{}
}

// WithCache memoizes Build results keyed by Fingerprint in the given
// cache. Pass nil to disable memoization.
func (p *Planner) WithCache(c *cache.Cache[uint64, *Info]) *Planner {
	p.cache = c
	return p
}

// WithCycleHook installs a diagnostic callback invoked from Build when the
// explicit dependencies contain a cycle. The callback receives the pass
// indices that could not be ordered. Build still completes with the
// deterministic fallback order; the hook exists for callers that want the
// anomaly to be louder than a log line.
func (p *Planner) WithCycleHook(fn func(deferred []int)) *Planner {
	p.onCycle = fn
	return p
}

// lastUsage is the per-resource tracking entry during edge inference.
type lastUsage struct {
	pass  int
	typ   rendergraph.ResourceType
	state State
}

// Build derives the synchronization edge set for the given passes.
//
// Passes are walked in topological order. For every usage, in declaration
// order, a prior entry for the same resource name from a different pass
// emits an edge from that pass to the current one; the entry is then
// overwritten with the current usage's state, so only a pass's last usage
// of a resource stays visible downstream, and a pass never produces an
// edge to itself. Explicit dependencies not already represented by a
// resource edge become dependency-only edges.
//
// An empty input returns a shared empty Info without allocating.
func (p *Planner) Build(passes rendergraph.PassList) *Info {
	if len(passes) == 0 {
		return emptyInfo
	}

	var fp uint64
	if p.cache != nil {
		fp = Fingerprint(passes)
		if info, ok := p.cache.Get(fp); ok {
			return info
		}
	}

	order, deferred := TopologicalSortDetail(passes)
	if len(deferred) > 0 {
		rendergraph.Logger().Warn("pass dependencies contain a cycle, using fallback order",
			"deferred", deferred)
		if p.onCycle != nil {
			p.onCycle(deferred)
		}
	}

	var edges []Edge
	last := make(map[string]lastUsage)
	for _, idx := range order {
		pass := passes.ByIndex(idx)
		for _, u := range pass.Usages {
			state := ResolveState(u, pass.Stage)
			if prev, ok := last[u.Name]; ok && prev.pass != idx {
				edges = append(edges, Edge{
					Producer:      prev.pass,
					Consumer:      idx,
					Resource:      u.Name,
					Type:          u.Type,
					ProducerState: prev.state,
					ConsumerState: state,
				})
			}
			last[u.Name] = lastUsage{pass: idx, typ: u.Type, state: state}
		}
	}

	// Preserve explicit dependencies that produced no resource edge.
	covered := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		covered[[2]int{e.Producer, e.Consumer}] = struct{}{}
	}
	for _, idx := range order {
		pass := passes.ByIndex(idx)
		for _, producer := range pass.Dependencies {
			prod := passes.ByIndex(producer)
			if prod == nil {
				continue
			}
			if _, ok := covered[[2]int{producer, idx}]; ok {
				continue
			}
			edges = append(edges, Edge{
				Producer:       producer,
				Consumer:       idx,
				Type:           rendergraph.ResourceTransferDestination,
				ProducerState:  genericState(prod.Stage),
				ConsumerState:  genericState(pass.Stage),
				DependencyOnly: true,
			})
		}
	}

	rendergraph.Logger().Debug("synchronization plan built",
		"passes", len(passes), "edges", len(edges))

	info := newInfo(edges)
	if p.cache != nil {
		p.cache.Set(fp, info)
	}
	return info
}
