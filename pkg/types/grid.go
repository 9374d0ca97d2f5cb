package types

// GridConfig describes the slot layout of a single card-page.
// TotalSlots is always Columns times Rows; resolvers populate all three
// fields together so callers never recompute the product.
// Implements: prd001-binder-core R2.
type GridConfig struct {
	ID         string // grid size identifier, e.g. "3x3"
	Columns    int
	Rows       int
	TotalSlots int
}

// PagePosition is the derived (page, slot) address of a linear position.
// Never stored; recomputed from the position and grid on demand.
// Implements: prd001-binder-core R2.3.
type PagePosition struct {
	PageIndex int // binder page; 0 is the cover
	SlotIndex int // slot within the card-page, 0-based
}
