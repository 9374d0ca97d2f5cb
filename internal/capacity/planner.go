// Package capacity measures binder slot usage and proposes expansion
// options when a planned insertion would overflow. All results are
// derived from the binder snapshot on every call; nothing is cached.
// Implements: prd002-capacity-planner;
//
//	docs/ARCHITECTURE § Capacity Planning.
package capacity

import (
	"fmt"

	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// ComputeCapacity returns the current slot accounting for the binder.
// When willClear is set the caller intends a full replacement, so used
// slots count as zero (prd002-capacity-planner R1.2). The two inputs are
// deliberately separate: inferring willClear from context double-counts
// existing content.
func ComputeCapacity(binder *types.Binder, willClear bool) types.CapacityInfo {
	grid := layout.Resolve(binder.Settings.GridSizeID)
	total := layout.CardPages(binder.Settings.PageCount) * grid.TotalSlots

	used := 0
	if !willClear {
		used = binder.UsedSlots()
	}

	return types.CapacityInfo{
		TotalSlots:     total,
		UsedSlots:      used,
		AvailableSlots: total - used,
		GridConfig:     grid,
		CurrentPages:   binder.Settings.PageCount,
	}
}

// ComputeExpansionOptions proposes ways to grow the binder so that
// neededSlots fit. Grid-resize options come first (every larger grid that
// individually satisfies the need, ascending by slots — the caller picks
// among all viable sizes), then a single page-addition option. The page
// option is omitted when it would pass MaxPages. An empty slice means the
// plan already fits (prd002-capacity-planner R3).
func ComputeExpansionOptions(binder *types.Binder, neededSlots int, willClear bool) []types.ExpansionOption {
	info := ComputeCapacity(binder, willClear)

	shortfall := neededSlots - info.AvailableSlots
	if willClear {
		shortfall = neededSlots - info.TotalSlots
	}
	if shortfall <= 0 {
		return nil
	}

	options := []types.ExpansionOption{}
	cardPages := layout.CardPages(binder.Settings.PageCount)

	for _, grid := range layout.LargerGrids(info.GridConfig) {
		newCapacity := cardPages * grid.TotalSlots
		if newCapacity-info.TotalSlots < shortfall {
			continue
		}
		options = append(options, types.ExpansionOption{
			Kind:            types.ExpansionGridResize,
			GridSizeID:      grid.ID,
			NewCapacity:     newCapacity,
			AdditionalSlots: newCapacity - info.TotalSlots,
			Label: fmt.Sprintf("Resize grid to %s (%d slots per page), capacity %d (+%d)",
				grid.ID, grid.TotalSlots, newCapacity, newCapacity-info.TotalSlots),
		})
	}

	// Each added binder page is a spread: two card-pages.
	slotsPerNewPage := info.GridConfig.TotalSlots * 2
	pagesNeeded := (shortfall + slotsPerNewPage - 1) / slotsPerNewPage
	if binder.Settings.PageCount+pagesNeeded <= binder.Settings.MaxPages {
		added := pagesNeeded * slotsPerNewPage
		options = append(options, types.ExpansionOption{
			Kind:            types.ExpansionAddPages,
			PagesToAdd:      pagesNeeded,
			NewCapacity:     info.TotalSlots + added,
			AdditionalSlots: added,
			Label: fmt.Sprintf("Add %d page(s), capacity %d (+%d)",
				pagesNeeded, info.TotalSlots+added, added),
		})
	}

	return options
}

// EnsureFits validates that neededSlots fit in the binder as-is. On
// overflow it returns a *types.CapacityError carrying the shortfall
// (prd002-capacity-planner R6.2). Placement plans call this before any
// mutation; a plan that does not fit is rejected wholesale.
func EnsureFits(binder *types.Binder, neededSlots int, willClear bool) error {
	info := ComputeCapacity(binder, willClear)

	available := info.AvailableSlots
	if willClear {
		available = info.TotalSlots
	}
	if neededSlots <= available {
		return nil
	}
	return &types.CapacityError{
		Needed:    neededSlots,
		Available: available,
		Shortfall: neededSlots - available,
	}
}
