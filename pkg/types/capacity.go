package types

// CapacityInfo is the derived slot accounting for a binder. It is computed
// on demand and never persisted; callers must not hold a CapacityInfo
// across a mutation (prd002-capacity-planner R1.3).
type CapacityInfo struct {
	TotalSlots     int
	UsedSlots      int
	AvailableSlots int
	GridConfig     GridConfig
	CurrentPages   int
}

// Expansion option kinds (prd002-capacity-planner R3).
const (
	ExpansionGridResize = "gridResize"
	ExpansionAddPages   = "addPages"
)

// ExpansionOption is a transient suggestion for growing a binder so a
// planned insertion fits. Nothing is applied until the caller commits the
// option (prd002-capacity-planner R3.1).
type ExpansionOption struct {
	Kind            string // ExpansionGridResize or ExpansionAddPages
	GridSizeID      string // set when Kind is ExpansionGridResize
	PagesToAdd      int    // set when Kind is ExpansionAddPages
	NewCapacity     int    // total slots after applying the option
	AdditionalSlots int    // NewCapacity minus the current total
	Label           string // human-readable description for selection UIs
}
