// Copyright 2026 The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/gogpu/rendergraph"
)

func TestResolveState(t *testing.T) {
	tests := []struct {
		name  string
		typ   rendergraph.ResourceType
		acc   rendergraph.AccessMode
		stage rendergraph.PassStage
		want  State
	}{
		{
			name: "color write", typ: rendergraph.ResourceColorAttachment,
			acc: rendergraph.AccessWrite, stage: rendergraph.StageGraphics,
			want: State{StageColorAttachmentOutput, AccessColorAttachmentWrite, LayoutColorAttachment},
		},
		{
			name: "color read-write", typ: rendergraph.ResourceColorAttachment,
			acc: rendergraph.AccessReadWrite, stage: rendergraph.StageGraphics,
			want: State{StageColorAttachmentOutput, AccessColorAttachmentRead | AccessColorAttachmentWrite, LayoutColorAttachment},
		},
		{
			name: "depth read-write", typ: rendergraph.ResourceDepthAttachment,
			acc: rendergraph.AccessReadWrite, stage: rendergraph.StageGraphics,
			want: State{StageEarlyFragmentTests | StageLateFragmentTests, AccessDepthStencilRead | AccessDepthStencilWrite, LayoutDepthStencilAttachment},
		},
		{
			name: "stencil read", typ: rendergraph.ResourceStencilAttachment,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageEarlyFragmentTests | StageLateFragmentTests, AccessDepthStencilRead, LayoutDepthStencilAttachment},
		},
		{
			name: "sampled in graphics", typ: rendergraph.ResourceSampledTexture,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageVertexShader | StageFragmentShader, AccessShaderRead, LayoutShaderReadOnly},
		},
		{
			name: "sampled in compute", typ: rendergraph.ResourceSampledTexture,
			acc: rendergraph.AccessRead, stage: rendergraph.StageCompute,
			want: State{StageComputeShader, AccessShaderRead, LayoutShaderReadOnly},
		},
		{
			name: "storage texture read-write in compute", typ: rendergraph.ResourceStorageTexture,
			acc: rendergraph.AccessReadWrite, stage: rendergraph.StageCompute,
			want: State{StageComputeShader, AccessShaderRead | AccessShaderWrite, LayoutGeneral},
		},
		{
			name: "uniform buffer", typ: rendergraph.ResourceUniformBuffer,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageVertexShader | StageFragmentShader, AccessUniformRead, LayoutNone},
		},
		{
			name: "storage buffer write in compute", typ: rendergraph.ResourceStorageBuffer,
			acc: rendergraph.AccessWrite, stage: rendergraph.StageCompute,
			want: State{StageComputeShader, AccessShaderWrite, LayoutNone},
		},
		{
			name: "vertex buffer", typ: rendergraph.ResourceVertexBuffer,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageVertexInput, AccessVertexAttributeRead, LayoutNone},
		},
		{
			name: "index buffer", typ: rendergraph.ResourceIndexBuffer,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageVertexInput, AccessIndexRead, LayoutNone},
		},
		{
			name: "indirect buffer", typ: rendergraph.ResourceIndirectBuffer,
			acc: rendergraph.AccessRead, stage: rendergraph.StageGraphics,
			want: State{StageDrawIndirect, AccessIndirectCommandRead, LayoutNone},
		},
		{
			name: "transfer source", typ: rendergraph.ResourceTransferSource,
			acc: rendergraph.AccessRead, stage: rendergraph.StageTransfer,
			want: State{StageTransfer, AccessTransferRead, LayoutTransferSource},
		},
		{
			name: "transfer destination", typ: rendergraph.ResourceTransferDestination,
			acc: rendergraph.AccessWrite, stage: rendergraph.StageTransfer,
			want: State{StageTransfer, AccessTransferWrite, LayoutTransferDestination},
		},
		{
			name: "resolve attachment", typ: rendergraph.ResourceResolveAttachment,
			acc: rendergraph.AccessWrite, stage: rendergraph.StageGraphics,
			want: State{StageColorAttachmentOutput, AccessColorAttachmentWrite, LayoutColorAttachment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := rendergraph.ResourceUsage{Name: "r", Type: tt.typ, Access: tt.acc}
			got := ResolveState(u, tt.stage)
			if got != tt.want {
				t.Errorf("ResolveState() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The access mask is never zero, whatever combination shows up.
func TestResolveStateAccessNeverZero(t *testing.T) {
	types := []rendergraph.ResourceType{
		rendergraph.ResourceColorAttachment,
		rendergraph.ResourceDepthAttachment,
		rendergraph.ResourceStencilAttachment,
		rendergraph.ResourceResolveAttachment,
		rendergraph.ResourceSampledTexture,
		rendergraph.ResourceStorageTexture,
		rendergraph.ResourceUniformBuffer,
		rendergraph.ResourceStorageBuffer,
		rendergraph.ResourceVertexBuffer,
		rendergraph.ResourceIndexBuffer,
		rendergraph.ResourceIndirectBuffer,
		rendergraph.ResourceTransferSource,
		rendergraph.ResourceTransferDestination,
	}
	modes := []rendergraph.AccessMode{
		rendergraph.AccessRead, rendergraph.AccessWrite, rendergraph.AccessReadWrite,
	}
	for _, typ := range types {
		for _, acc := range modes {
			u := rendergraph.ResourceUsage{Name: "r", Type: typ, Access: acc}
			if s := ResolveState(u, rendergraph.StageGraphics); s.Access == 0 {
				t.Errorf("zero access mask for %v/%v", typ, acc)
			}
		}
	}
}

func TestStageMaskString(t *testing.T) {
	tests := []struct {
		mask StageMask
		want string
	}{
		{0, "None"},
		{StageComputeShader, "ComputeShader"},
		{StageVertexShader | StageFragmentShader, "VertexShader|FragmentShader"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("StageMask(%#x).String() = %q, want %q", uint32(tt.mask), got, tt.want)
		}
	}
}

func TestAccessMaskString(t *testing.T) {
	got := (AccessShaderRead | AccessShaderWrite).String()
	if got != "ShaderRead|ShaderWrite" {
		t.Errorf("String() = %q", got)
	}
}
