package types

// Variant ordering policies (prd003-set-placement R3).
const (
	VariantOrderInterleaved = "interleaved"
	VariantOrderFirst       = "first"
	VariantOrderLast        = "last"
)

// Binder placement modes (prd003-set-placement R4).
const (
	PlacementReplace = "replace"
	PlacementStart   = "start"
	PlacementEnd     = "end"
)

// validVariantOrders is the set of recognized ordering policy values.
var validVariantOrders = map[string]bool{
	VariantOrderInterleaved: true,
	VariantOrderFirst:       true,
	VariantOrderLast:        true,
}

// validPlacements is the set of recognized placement mode values.
var validPlacements = map[string]bool{
	PlacementReplace: true,
	PlacementStart:   true,
	PlacementEnd:     true,
}

// PlacementConfig controls how a fetched set list is expanded and written
// into a binder. The structure is discriminated by Placement: BufferPages
// is meaningful only for "start" and "end", and must be zero for
// "replace" (prd003-set-placement R1; docs/DECISIONS § tagged placement config).
type PlacementConfig struct {
	IncludeVariants bool
	VariantCopies   int    // variant entries generated per eligible card; at least 1
	VariantOrder    string // one of the VariantOrder constants
	Placement       string // one of the Placement constants
	BufferPages     int    // empty card-pages between the new block and existing content
}

// Validate checks that the PlacementConfig is well-formed. It returns a
// sentinel error from this package on failure (prd003-set-placement R1.2).
func (c PlacementConfig) Validate() error {
	if !validPlacements[c.Placement] {
		return ErrInvalidPlacement
	}
	if c.IncludeVariants {
		if c.VariantCopies < 1 {
			return ErrInvalidCopies
		}
		if !validVariantOrders[c.VariantOrder] {
			return ErrInvalidPlacement
		}
	}
	if c.BufferPages < 0 {
		return ErrInvalidPlacement
	}
	if c.Placement == PlacementReplace && c.BufferPages != 0 {
		// Replace writes from position 0; a buffer is meaningless there.
		return ErrInvalidPlacement
	}
	return nil
}

// Move is one relocation of an entry between binder positions.
// Implements: prd004-position-shifter R1.
type Move struct {
	From int
	To   int
}
