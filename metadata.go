package rendergraph

// PassStage classifies the kind of GPU work a pass performs. It feeds the
// planner's stage-mask derivation: the same resource usage maps to different
// pipeline stages depending on whether the owning pass is graphics, compute,
// or transfer work.
type PassStage uint8

const (
	// StageGraphics marks a pass that issues draw calls.
	StageGraphics PassStage = iota

	// StageCompute marks a pass that issues compute dispatches.
	StageCompute

	// StageTransfer marks a pass that issues copies or blits.
	StageTransfer
)

// passStageNames maps PassStage values to their string representation.
var passStageNames = [...]string{
	StageGraphics: "Graphics",
	StageCompute:  "Compute",
	StageTransfer: "Transfer",
}

// String returns the string representation of a PassStage.
func (s PassStage) String() string {
	if int(s) < len(passStageNames) {
		return passStageNames[s]
	}
	return "Unknown"
}

// Descriptor schema names applied by default. Every pass carries
// SchemaEngineGlobals; graphics passes additionally carry
// SchemaMaterialResources. Defaults are re-applied on every ForPass call,
// so schema membership only grows within one describe cycle.
const (
	// SchemaEngineGlobals holds per-frame engine state (camera, time).
	SchemaEngineGlobals = "EngineGlobals"

	// SchemaMaterialResources holds per-material bindings for draw work.
	SchemaMaterialResources = "MaterialResources"
)

// PassMetadata accumulates the description of a single pass during one
// describe cycle: its resource usages, explicit ordering constraints,
// descriptor schema requirements, stage classification, and display name.
//
// PassMetadata is created on first reference to a pass index inside a
// PassMetadataCollection and is mutated only through PassBuilder. It lives
// for one graph-description cycle and is rebuilt wholesale on the next.
// It is not safe for concurrent mutation.
type PassMetadata struct {
	index   int
	name    string
	stage   PassStage
	usages  []ResourceUsage
	deps    map[int]struct{}
	schemas map[string]struct{}
}

// newPassMetadata creates metadata for the given pass index with the
// default descriptor schemas applied.
func newPassMetadata(index int, stage PassStage) *PassMetadata {
	m := &PassMetadata{
		index:   index,
		stage:   stage,
		deps:    make(map[int]struct{}),
		schemas: make(map[string]struct{}),
	}
	m.applyDefaultSchemas()
	return m
}

// applyDefaultSchemas re-applies the implicit schema memberships.
// Called on creation and again on every ForPass merge; membership can only
// grow, never shrink.
func (m *PassMetadata) applyDefaultSchemas() {
	m.schemas[SchemaEngineGlobals] = struct{}{}
	if m.stage == StageGraphics {
		m.schemas[SchemaMaterialResources] = struct{}{}
	}
}

// Index returns the caller-assigned pass index.
func (m *PassMetadata) Index() int { return m.index }

// Name returns the display name. Last writer wins across repeated ForPass
// calls and WithName.
func (m *PassMetadata) Name() string { return m.name }

// Stage returns the stage classification.
func (m *PassMetadata) Stage() PassStage { return m.stage }

// UsageCount returns the number of recorded resource usages.
func (m *PassMetadata) UsageCount() int { return len(m.usages) }

// HasDependency reports whether an explicit dependency on the given pass
// index was recorded.
func (m *PassMetadata) HasDependency(index int) bool {
	_, ok := m.deps[index]
	return ok
}

// HasSchema reports whether the named descriptor schema is required.
func (m *PassMetadata) HasSchema(schema string) bool {
	_, ok := m.schemas[schema]
	return ok
}

// addUsage appends a resource usage. Usages are strictly additive within a
// describe cycle: duplicates of the same resource and type are legal and
// both retained. The planner's last-usage-wins rule, not the metadata,
// resolves ambiguity. Blank names are dropped.
func (m *PassMetadata) addUsage(u ResourceUsage) {
	if u.Name == "" {
		return
	}
	m.usages = append(m.usages, u)
}

// addDependency records an explicit ordering constraint on another pass.
// A self-dependency is silently ignored.
func (m *PassMetadata) addDependency(index int) {
	if index == m.index {
		return
	}
	m.deps[index] = struct{}{}
}

// addSchema records a descriptor schema requirement. Blank names are
// dropped.
func (m *PassMetadata) addSchema(schema string) {
	if schema == "" {
		return
	}
	m.schemas[schema] = struct{}{}
}
