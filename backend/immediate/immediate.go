// Package immediate provides the sequential fallback executor.
//
// Immediate-mode execution is already correctly ordered by construction:
// the command chain was recorded in execution order, so the executor does
// not honor synchronization edges at all. It only validates that the
// explicit dependencies are structurally sound (no cycle) before running
// the chain as-is, logging a warning when they are not.
package immediate

import (
	"fmt"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend"
	"github.com/gogpu/rendergraph/plan"
)

// init registers the immediate executor on package import.
func init() {
	backend.Register(backend.Immediate, func() backend.Executor {
		return New()
	})
}

// Executor runs commands sequentially in their original chain order.
type Executor struct {
	initialized bool
}

// New creates an immediate executor.
func New() *Executor {
	return &Executor{}
}

// Name returns the executor identifier.
func (e *Executor) Name() string { return backend.Immediate }

// Init initializes the executor.
func (e *Executor) Init() error {
	e.initialized = true
	return nil
}

// Close releases executor resources.
func (e *Executor) Close() {
	e.initialized = false
}

// Execute validates pass ordering soundness, then runs the chain in its
// original order. The synchronization info is not consulted; it exists for
// explicit-barrier backends.
func (e *Executor) Execute(chain []backend.Command, passes rendergraph.PassList, _ *plan.Info) error {
	if !e.initialized {
		return backend.ErrNotInitialized
	}

	if _, deferred := plan.TopologicalSortDetail(passes); len(deferred) > 0 {
		rendergraph.Logger().Warn("immediate executor: dependency cycle detected, executing chain order",
			"deferred", deferred)
	}

	for i, cmd := range chain {
		if cmd == nil {
			continue
		}
		if err := cmd.Execute(); err != nil {
			return fmt.Errorf("immediate: command %d (pass %d): %w", i, cmd.PassIndex(), err)
		}
	}
	return nil
}
