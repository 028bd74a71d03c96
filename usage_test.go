package rendergraph

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestResourceTypeString(t *testing.T) {
	tests := []struct {
		typ  ResourceType
		want string
	}{
		{ResourceColorAttachment, "ColorAttachment"},
		{ResourceDepthAttachment, "DepthAttachment"},
		{ResourceStencilAttachment, "StencilAttachment"},
		{ResourceResolveAttachment, "ResolveAttachment"},
		{ResourceSampledTexture, "SampledTexture"},
		{ResourceStorageTexture, "StorageTexture"},
		{ResourceUniformBuffer, "UniformBuffer"},
		{ResourceStorageBuffer, "StorageBuffer"},
		{ResourceVertexBuffer, "VertexBuffer"},
		{ResourceIndexBuffer, "IndexBuffer"},
		{ResourceIndirectBuffer, "IndirectBuffer"},
		{ResourceTransferSource, "TransferSource"},
		{ResourceTransferDestination, "TransferDestination"},
		{ResourceType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ResourceType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestResourceTypeIsAttachment(t *testing.T) {
	attachments := []ResourceType{
		ResourceColorAttachment,
		ResourceDepthAttachment,
		ResourceStencilAttachment,
		ResourceResolveAttachment,
	}
	for _, typ := range attachments {
		if !typ.IsAttachment() {
			t.Errorf("%v.IsAttachment() = false, want true", typ)
		}
	}

	others := []ResourceType{
		ResourceSampledTexture,
		ResourceStorageTexture,
		ResourceUniformBuffer,
		ResourceStorageBuffer,
		ResourceVertexBuffer,
		ResourceIndexBuffer,
		ResourceIndirectBuffer,
		ResourceTransferSource,
		ResourceTransferDestination,
	}
	for _, typ := range others {
		if typ.IsAttachment() {
			t.Errorf("%v.IsAttachment() = true, want false", typ)
		}
	}
}

func TestResourceTypeIsBuffer(t *testing.T) {
	buffers := []ResourceType{
		ResourceUniformBuffer,
		ResourceStorageBuffer,
		ResourceVertexBuffer,
		ResourceIndexBuffer,
		ResourceIndirectBuffer,
	}
	for _, typ := range buffers {
		if !typ.IsBuffer() {
			t.Errorf("%v.IsBuffer() = false, want true", typ)
		}
	}
	if ResourceSampledTexture.IsBuffer() {
		t.Error("SampledTexture.IsBuffer() = true, want false")
	}
}

func TestAccessMode(t *testing.T) {
	tests := []struct {
		mode   AccessMode
		str    string
		reads  bool
		writes bool
	}{
		{AccessRead, "Read", true, false},
		{AccessWrite, "Write", false, true},
		{AccessReadWrite, "ReadWrite", true, true},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.str {
			t.Errorf("%v.String() = %q, want %q", tt.mode, got, tt.str)
		}
		if got := tt.mode.Reads(); got != tt.reads {
			t.Errorf("%v.Reads() = %v, want %v", tt.mode, got, tt.reads)
		}
		if got := tt.mode.Writes(); got != tt.writes {
			t.Errorf("%v.Writes() = %v, want %v", tt.mode, got, tt.writes)
		}
	}
}

func TestLoadOpGPU(t *testing.T) {
	if got := LoadOpLoad.GPU(); got != gputypes.LoadOpLoad {
		t.Errorf("LoadOpLoad.GPU() = %v, want LoadOpLoad", got)
	}
	if got := LoadOpClear.GPU(); got != gputypes.LoadOpClear {
		t.Errorf("LoadOpClear.GPU() = %v, want LoadOpClear", got)
	}
	// WebGPU has no DontCare; it maps to Clear.
	if got := LoadOpDontCare.GPU(); got != gputypes.LoadOpClear {
		t.Errorf("LoadOpDontCare.GPU() = %v, want LoadOpClear", got)
	}
}

func TestStoreOpGPU(t *testing.T) {
	if got := StoreOpStore.GPU(); got != gputypes.StoreOpStore {
		t.Errorf("StoreOpStore.GPU() = %v, want StoreOpStore", got)
	}
	if got := StoreOpDontCare.GPU(); got != gputypes.StoreOpDiscard {
		t.Errorf("StoreOpDontCare.GPU() = %v, want StoreOpDiscard", got)
	}
}

func TestOpStrings(t *testing.T) {
	if got := LoadOpClear.String(); got != "Clear" {
		t.Errorf("LoadOpClear.String() = %q, want Clear", got)
	}
	if got := LoadOpDontCare.String(); got != "DontCare" {
		t.Errorf("LoadOpDontCare.String() = %q, want DontCare", got)
	}
	if got := StoreOpStore.String(); got != "Store" {
		t.Errorf("StoreOpStore.String() = %q, want Store", got)
	}
}
