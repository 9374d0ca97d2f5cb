package types

import "time"

// BinderSettings holds the user-tunable layout parameters of a binder.
// Implements: prd001-binder-core R3.2.
type BinderSettings struct {
	GridSizeID string
	PageCount  int // binder pages including the cover; at least 1
	MaxPages   int // hard ceiling for page-addition expansion
}

// Binder is an in-memory snapshot of one curated collection. Cards maps a
// non-negative linear position to the entry occupying it; keys are unique
// positions and entry keys are unique within the map.
// Implements: prd001-binder-core R3.
type Binder struct {
	ID       string
	Name     string
	Settings BinderSettings
	Cards    map[int]CardEntry
	// HistoryPointer is the persisted undo/redo position: -1 when the
	// binder is at its live state, otherwise the index of the history
	// entry being viewed. It survives sessions so navigation chains
	// continue where they left off.
	HistoryPointer int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UsedSlots returns the count of occupied positions.
func (b *Binder) UsedSlots() int {
	return len(b.Cards)
}

// HighestPosition returns the largest occupied position, or -1 when the
// binder is empty.
func (b *Binder) HighestPosition() int {
	highest := -1
	for pos := range b.Cards {
		if pos > highest {
			highest = pos
		}
	}
	return highest
}

// Positions returns every occupied position in unspecified order.
// Callers that need an ordering sort the result themselves.
func (b *Binder) Positions() []int {
	positions := make([]int, 0, len(b.Cards))
	for pos := range b.Cards {
		positions = append(positions, pos)
	}
	return positions
}
