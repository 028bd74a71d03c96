package rendergraph

import "testing"

func TestPassStageString(t *testing.T) {
	tests := []struct {
		stage PassStage
		want  string
	}{
		{StageGraphics, "Graphics"},
		{StageCompute, "Compute"},
		{StageTransfer, "Transfer"},
		{PassStage(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("PassStage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestDefaultSchemas(t *testing.T) {
	col := NewPassMetadataCollection()

	graphics := col.ForPass(0, "draw", StageGraphics).Metadata()
	if !graphics.HasSchema(SchemaEngineGlobals) {
		t.Error("graphics pass should carry EngineGlobals")
	}
	if !graphics.HasSchema(SchemaMaterialResources) {
		t.Error("graphics pass should carry MaterialResources")
	}

	compute := col.ForPass(1, "dispatch", StageCompute).Metadata()
	if !compute.HasSchema(SchemaEngineGlobals) {
		t.Error("compute pass should carry EngineGlobals")
	}
	if compute.HasSchema(SchemaMaterialResources) {
		t.Error("compute pass should not carry MaterialResources by default")
	}
}

func TestSchemaMembershipOnlyGrows(t *testing.T) {
	col := NewPassMetadataCollection()

	// First described as graphics: picks up MaterialResources.
	col.ForPass(0, "p", StageGraphics)

	// Re-described as compute: stage changes, but membership never shrinks.
	m := col.ForPass(0, "p", StageCompute).Metadata()
	if m.Stage() != StageCompute {
		t.Errorf("stage = %v, want Compute (last caller wins)", m.Stage())
	}
	if !m.HasSchema(SchemaMaterialResources) {
		t.Error("MaterialResources should persist after stage change")
	}
	if !m.HasSchema(SchemaEngineGlobals) {
		t.Error("EngineGlobals should always be present")
	}
}

// A pass depending on itself is filtered at the metadata level and never
// reaches the planner.
func TestSelfDependencyIgnored(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(5, "p5", StageGraphics).DependsOn(5)

	list := col.Build()
	if len(list) != 1 {
		t.Fatalf("expected 1 pass, got %d", len(list))
	}
	if len(list[0].Dependencies) != 0 {
		t.Errorf("self-dependency should be ignored, got deps %v", list[0].Dependencies)
	}
}

func TestAddDependency(t *testing.T) {
	col := NewPassMetadataCollection()
	col.ForPass(2, "p2", StageGraphics).DependsOn(0, 1, 1, 2)

	m := col.Metadata(2)
	if !m.HasDependency(0) || !m.HasDependency(1) {
		t.Error("dependencies 0 and 1 should be recorded")
	}
	if m.HasDependency(2) {
		t.Error("self-dependency should be filtered")
	}

	list := col.Build()
	deps := list[0].Dependencies
	if len(deps) != 2 || deps[0] != 0 || deps[1] != 1 {
		t.Errorf("Dependencies = %v, want [0 1]", deps)
	}
}

func TestBlankSchemaIgnored(t *testing.T) {
	col := NewPassMetadataCollection()
	m := col.ForPass(0, "p", StageCompute).UseDescriptorSchema("").Metadata()

	// Only the implicit EngineGlobals remains.
	list := col.Build()
	if len(list[0].DescriptorSchemas) != 1 {
		t.Errorf("schemas = %v, want only EngineGlobals", list[0].DescriptorSchemas)
	}
	_ = m
}
