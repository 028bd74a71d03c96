package plan

import (
	"container/heap"
	"sort"

	"github.com/gogpu/rendergraph"
)

// TopologicalSort orders pass indices so that every explicit dependency's
// producer appears before its consumer. Only explicit dependencies
// constrain ordering; resource usages are advisory metadata, since the
// caller's dependency declarations are the authoritative ordering source.
//
// The sort is Kahn's algorithm with a deterministic tie-break: among ready
// passes, the numerically smallest index is always taken first. The result
// always contains every input pass: passes trapped in a dependency cycle
// are appended at the end in ascending index order rather than failing.
// Dependencies on pass indices absent from the list contribute nothing.
func TopologicalSort(passes rendergraph.PassList) []int {
	order, _ := TopologicalSortDetail(passes)
	return order
}

// TopologicalSortDetail is TopologicalSort plus the list of passes that
// could not be ordered because they sit in a dependency cycle (ascending,
// already included at the tail of order). A non-empty deferred slice is the
// only cycle signal this package emits; the sort itself never fails.
func TopologicalSortDetail(passes rendergraph.PassList) (order, deferred []int) {
	if len(passes) == 0 {
		return nil, nil
	}

	present := make(map[int]*rendergraph.Pass, len(passes))
	for i := range passes {
		present[passes[i].Index] = &passes[i]
	}

	// Adjacency producer -> consumers, in-degree per consumer.
	adj := make(map[int][]int, len(passes))
	inDegree := make(map[int]int, len(passes))
	for i := range passes {
		inDegree[passes[i].Index] = 0
	}
	for i := range passes {
		consumer := passes[i].Index
		for _, producer := range passes[i].Dependencies {
			if _, ok := present[producer]; !ok {
				continue
			}
			adj[producer] = append(adj[producer], consumer)
			inDegree[consumer]++
		}
	}

	ready := &intMinHeap{}
	for i := range passes {
		if inDegree[passes[i].Index] == 0 {
			ready.push(passes[i].Index)
		}
	}

	order = make([]int, 0, len(passes))
	for ready.Len() > 0 {
		idx := ready.pop()
		order = append(order, idx)
		for _, consumer := range adj[idx] {
			inDegree[consumer]--
			if inDegree[consumer] == 0 {
				ready.push(consumer)
			}
		}
	}

	if len(order) < len(passes) {
		ordered := make(map[int]struct{}, len(order))
		for _, idx := range order {
			ordered[idx] = struct{}{}
		}
		for i := range passes {
			if _, ok := ordered[passes[i].Index]; !ok {
				deferred = append(deferred, passes[i].Index)
			}
		}
		sort.Ints(deferred)
		order = append(order, deferred...)
	}
	return order, deferred
}

// intMinHeap is a min-heap of pass indices for the deterministic
// smallest-index-first ready set.
type intMinHeap []int

func (h intMinHeap) Len() int            { return len(h) }
func (h intMinHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intMinHeap) Push(x any)         { *h = append(*h, x.(int)) }
func (h *intMinHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (h *intMinHeap) push(v int) { heap.Push(h, v) }
func (h *intMinHeap) pop() int   { return heap.Pop(h).(int) }
