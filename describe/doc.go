// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package describe implements the one-time walk of a command chain that
// produces pass metadata.
//
// A describe walk mirrors execution order without issuing GPU calls: each
// command's DescribeRenderPass is invoked once, in chain order, against a
// Context. The Context tracks the currently bound render target so that
// commands which implicitly target "whatever is bound" can resolve a
// concrete resource name, and hands out stable indices for synthetic passes
// (blits, fullscreen quads) that have no caller-assigned pass slot.
//
// All Context operations are defensive no-ops on invalid input (blank
// names, pops of an empty stack). The walk must never abort the frame
// because one command's bookkeeping was incomplete; the cost is degraded
// metadata, not a crash.
package describe
