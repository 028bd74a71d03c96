// Package backend defines the executor interface consuming planner output,
// plus a registry for executor implementations.
//
// An executor receives the ordered command chain, the frozen pass list, and
// the synchronization Info. How much of the Info it honors is the
// executor's business: the immediate executor only validates that the
// topological sort is sound before running commands in their original
// order (immediate-mode execution is already correctly ordered by
// construction), while the barrier executor replays commands in planner
// order with explicit barrier operations between passes.
//
// Executors register themselves in init() following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/rendergraph/backend/immediate"
//
//	exec, err := backend.Get(backend.Immediate)
package backend
