// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plan derives synchronization edges from frozen pass metadata.
//
// The planner consumes a rendergraph.PassList, topologically orders the
// passes from their explicit dependencies, walks them in that order
// tracking the last recorded usage per named resource, and emits a directed
// edge for every producer-to-consumer relationship it infers. Each edge
// carries the pipeline-stage mask, access mask, and (for images) layout on
// both sides, so an explicit-barrier backend can translate it directly into
// a memory barrier or layout transition. Explicit dependencies that no
// resource edge already represents are preserved as dependency-only edges.
//
// The planner is non-throwing by contract. A dependency cycle does not
// fail the sort: passes left over after Kahn's algorithm are appended in
// ascending index order, trading correctness-under-cycles for availability.
// Use Planner.OnCycle or TopologicalSortDetail to observe cycles.
//
// Output is deterministic: the ready set always pops the numerically
// smallest pass index, and usages are processed in declaration order, so
// two runs over the same metadata produce element-wise identical edge
// lists.
package plan
