package backend

import (
	"errors"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/plan"
)

// Common backend errors.
var (
	// ErrNotAvailable is returned when a requested executor is not
	// registered.
	ErrNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when Execute is called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Executor name constants.
const (
	// Immediate is the sequential validating executor.
	Immediate = "immediate"

	// Barrier is the explicit-barrier recording executor.
	Barrier = "barrier"

	// WGPU is the HAL-backed executor.
	WGPU = "wgpu"
)

// Command is one executable unit of the ordered command chain. Commands
// carry the pass index they were described against so executors can group
// them by pass.
type Command interface {
	// PassIndex returns the pass this command belongs to.
	PassIndex() int

	// Execute performs the command's work.
	Execute() error
}

// Executor runs a described frame. Implementations decide how much of the
// synchronization Info to honor.
type Executor interface {
	// Name returns the executor identifier (e.g., "immediate", "barrier").
	Name() string

	// Init initializes the executor. Must be called before Execute.
	Init() error

	// Close releases executor resources. The executor must not be used
	// after Close.
	Close()

	// Execute runs the command chain against the frozen pass metadata and
	// the planner's synchronization info.
	Execute(chain []Command, passes rendergraph.PassList, info *plan.Info) error
}
