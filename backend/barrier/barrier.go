// Package barrier provides the explicit-barrier recording executor.
//
// The executor replays the command chain in the planner's topological
// order and records a transcript of operations the way an explicit API
// (Vulkan, D3D12) would consume them: a barrier op per synchronization
// edge entering a pass, then begin/execute/end for the pass itself. The
// transcript is retained on the executor for inspection after Execute.
package barrier

import (
	"fmt"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend"
	"github.com/gogpu/rendergraph/plan"
)

// init registers the barrier executor on package import.
func init() {
	backend.Register(backend.Barrier, func() backend.Executor {
		return New()
	})
}

// OpKind identifies the type of a transcript operation.
type OpKind uint8

const (
	// OpBarrier is a memory/layout barrier derived from one edge.
	OpBarrier OpKind = iota

	// OpBeginPass opens a pass.
	OpBeginPass

	// OpExecute runs one command inside the open pass.
	OpExecute

	// OpEndPass closes the open pass.
	OpEndPass
)

// opKindNames maps OpKind values to their string representation.
var opKindNames = [...]string{
	OpBarrier:   "Barrier",
	OpBeginPass: "BeginPass",
	OpExecute:   "Execute",
	OpEndPass:   "EndPass",
}

// String returns the string representation of an OpKind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one entry of the recorded transcript.
type Op struct {
	// Kind identifies the operation.
	Kind OpKind

	// Pass is the pass index the op belongs to.
	Pass int

	// Edge is set for OpBarrier: the synchronization edge the barrier
	// realizes.
	Edge plan.Edge
}

// Executor records an explicit-barrier transcript while executing.
type Executor struct {
	initialized bool
	ops         []Op
}

// New creates a barrier executor.
func New() *Executor {
	return &Executor{}
}

// Name returns the executor identifier.
func (e *Executor) Name() string { return backend.Barrier }

// Init initializes the executor.
func (e *Executor) Init() error {
	e.initialized = true
	return nil
}

// Close releases executor resources.
func (e *Executor) Close() {
	e.initialized = false
	e.ops = nil
}

// Ops returns the transcript recorded by the last Execute call. The slice
// is shared; callers must not modify it.
func (e *Executor) Ops() []Op { return e.ops }

// Execute replays the chain in topological pass order. For each pass, a
// barrier op is recorded per incoming synchronization edge, then the
// pass's commands run in their original relative order. Commands whose
// pass index is absent from the metadata run after all described passes,
// in chain order.
func (e *Executor) Execute(chain []backend.Command, passes rendergraph.PassList, info *plan.Info) error {
	if !e.initialized {
		return backend.ErrNotInitialized
	}
	e.ops = e.ops[:0]

	byPass := make(map[int][]backend.Command)
	var orphans []backend.Command
	for _, cmd := range chain {
		if cmd == nil {
			continue
		}
		if passes.ByIndex(cmd.PassIndex()) == nil {
			orphans = append(orphans, cmd)
			continue
		}
		byPass[cmd.PassIndex()] = append(byPass[cmd.PassIndex()], cmd)
	}

	for _, idx := range plan.TopologicalSort(passes) {
		for _, edge := range info.EdgesForPass(idx) {
			e.ops = append(e.ops, Op{Kind: OpBarrier, Pass: idx, Edge: edge})
		}
		e.ops = append(e.ops, Op{Kind: OpBeginPass, Pass: idx})
		for _, cmd := range byPass[idx] {
			e.ops = append(e.ops, Op{Kind: OpExecute, Pass: idx})
			if err := cmd.Execute(); err != nil {
				return fmt.Errorf("barrier: pass %d: %w", idx, err)
			}
		}
		e.ops = append(e.ops, Op{Kind: OpEndPass, Pass: idx})
	}

	for _, cmd := range orphans {
		if err := cmd.Execute(); err != nil {
			return fmt.Errorf("barrier: orphan command (pass %d): %w", cmd.PassIndex(), err)
		}
	}
	return nil
}
