// Package rendergraph provides pass description and synchronization planning
// for GPU render graphs.
//
// # Overview
//
// rendergraph is a Pure Go planning library for the GoGPU ecosystem. It does
// no GPU work itself: rendering commands describe which logical resources
// each pass reads and writes, and the library turns those descriptions into
// an ordered pass list plus a set of synchronization edges that a backend
// (immediate-mode GL-style, or an explicit-barrier API like Vulkan/D3D12)
// consumes to decide what barriers or layout transitions to insert.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/rendergraph"
//	    "github.com/gogpu/rendergraph/plan"
//	)
//
//	col := rendergraph.NewPassMetadataCollection()
//
//	col.ForPass(0, "GBuffer", rendergraph.StageGraphics).
//	    UseColorAttachment("sceneColor").
//	    UseDepthAttachment("sceneDepth")
//
//	col.ForPass(1, "Lighting", rendergraph.StageGraphics).
//	    SampleTexture("sceneColor").
//	    UseColorAttachment("lit")
//
//	info := plan.NewPlanner().Build(col.Build())
//	for _, e := range info.Edges() {
//	    // e.Producer -> e.Consumer, with stage/access masks and layouts
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: ResourceUsage, PassMetadataCollection, PassBuilder, PassList
//   - describe: one-time walk of a command chain producing pass metadata
//   - plan: topological ordering and synchronization edge inference
//   - backend: executors consuming the ordered passes and edge set
//
// # Describe / Plan / Execute
//
// Producers run once per frame (or per pipeline-configuration change) in a
// "describe" walk that mirrors execution order without issuing GPU calls.
// The resulting metadata is frozen into an immutable PassList, the planner
// derives the edge set, and a backend executes. The frozen PassList and the
// planner output are safe for unrestricted concurrent reads.
//
// # Failure Model
//
// The core is deliberately non-throwing: blank resource names, unbalanced
// pops, self-dependencies, and dependency cycles degrade metadata
// completeness instead of aborting the frame. See package plan for the
// cycle-tolerance contract.
package rendergraph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
