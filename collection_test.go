package rendergraph

import "testing"

func TestNewPassMetadataCollection(t *testing.T) {
	col := NewPassMetadataCollection()
	if col == nil {
		t.Fatal("NewPassMetadataCollection returned nil")
	}
	if col.Len() != 0 {
		t.Errorf("new collection should be empty, got %d passes", col.Len())
	}
	if col.Metadata(0) != nil {
		t.Error("Metadata on empty collection should return nil")
	}
}

func TestForPassCreatesIdempotently(t *testing.T) {
	col := NewPassMetadataCollection()

	b1 := col.ForPass(3, "first", StageGraphics)
	b2 := col.ForPass(3, "", StageGraphics)

	if col.Len() != 1 {
		t.Fatalf("expected 1 pass after two ForPass calls, got %d", col.Len())
	}
	if b1.Metadata() != b2.Metadata() {
		t.Error("both builders should be bound to the same metadata")
	}
}

func TestForPassMergeSemantics(t *testing.T) {
	col := NewPassMetadataCollection()

	col.ForPass(0, "original", StageGraphics)

	// Blank name keeps the stored name; stage always overwrites.
	m := col.ForPass(0, "", StageCompute).Metadata()
	if m.Name() != "original" {
		t.Errorf("blank name should not overwrite, got %q", m.Name())
	}
	if m.Stage() != StageCompute {
		t.Errorf("stage = %v, want Compute", m.Stage())
	}

	// Non-blank name overwrites.
	m = col.ForPass(0, "renamed", StageCompute).Metadata()
	if m.Name() != "renamed" {
		t.Errorf("name = %q, want renamed", m.Name())
	}
}

func TestBuildOrdersByIndex(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(7, "c", StageGraphics)
	col.ForPass(1, "a", StageGraphics)
	col.ForPass(4, "b", StageCompute)

	list := col.Build()
	if len(list) != 3 {
		t.Fatalf("expected 3 passes, got %d", len(list))
	}
	want := []int{1, 4, 7}
	for i, p := range list {
		if p.Index != want[i] {
			t.Errorf("list[%d].Index = %d, want %d", i, p.Index, want[i])
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	col := NewPassMetadataCollection()
	if list := col.Build(); list != nil {
		t.Errorf("Build on empty collection = %v, want nil", list)
	}
}

// Mutating the collection after Build must not alter the snapshot.
func TestBuildSnapshotIsolation(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(0, "p0", StageGraphics).UseColorAttachment("color")

	list := col.Build()
	if len(list[0].Usages) != 1 {
		t.Fatalf("expected 1 usage in snapshot, got %d", len(list[0].Usages))
	}

	col.ForPass(0, "changed", StageCompute).SampleTexture("tex")

	if list[0].Name != "p0" {
		t.Errorf("snapshot name changed to %q", list[0].Name)
	}
	if list[0].Stage != StageGraphics {
		t.Errorf("snapshot stage changed to %v", list[0].Stage)
	}
	if len(list[0].Usages) != 1 {
		t.Errorf("snapshot usages grew to %d", len(list[0].Usages))
	}
}

func TestPassListByIndex(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(2, "a", StageGraphics)
	col.ForPass(9, "b", StageTransfer)
	list := col.Build()

	if p := list.ByIndex(9); p == nil || p.Name != "b" {
		t.Errorf("ByIndex(9) = %+v, want pass b", p)
	}
	if p := list.ByIndex(5); p != nil {
		t.Errorf("ByIndex(5) = %+v, want nil", p)
	}
	var empty PassList
	if p := empty.ByIndex(0); p != nil {
		t.Errorf("ByIndex on empty list = %+v, want nil", p)
	}
}

func TestBuildUsagePreservesDeclarationOrder(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(0, "p", StageGraphics).
		SampleTexture("b").
		UseColorAttachment("a").
		SampleTexture("c")

	list := col.Build()
	got := list[0].Usages
	wantNames := []string{"b", "a", "c"}
	if len(got) != len(wantNames) {
		t.Fatalf("expected %d usages, got %d", len(wantNames), len(got))
	}
	for i, u := range got {
		if u.Name != wantNames[i] {
			t.Errorf("usage[%d].Name = %q, want %q", i, u.Name, wantNames[i])
		}
	}
}
