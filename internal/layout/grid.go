// Package layout resolves grid-size identifiers and converts between
// linear binder positions and (page, slot) addresses. Every other layout
// component and the page-jump navigation build on this package.
// Implements: prd001-binder-core R2 (grid resolution, addressing rule);
//
//	docs/ARCHITECTURE § Page Addressing.
package layout

import (
	"sort"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// DefaultGridSizeID is the documented fallback for unrecognized grid-size
// identifiers. Unknown identifiers resolve to it silently; they are not
// an error (prd001-binder-core R2.2).
const DefaultGridSizeID = "3x3"

// gridConfigs is the closed table of supported grid sizes.
var gridConfigs = map[string]types.GridConfig{
	"2x2": {ID: "2x2", Columns: 2, Rows: 2, TotalSlots: 4},
	"3x3": {ID: "3x3", Columns: 3, Rows: 3, TotalSlots: 9},
	"4x3": {ID: "4x3", Columns: 4, Rows: 3, TotalSlots: 12},
	"4x4": {ID: "4x4", Columns: 4, Rows: 4, TotalSlots: 16},
}

// Resolve returns the GridConfig for the given identifier, falling back
// to the default configuration when the identifier is not in the table.
func Resolve(gridSizeID string) types.GridConfig {
	if cfg, ok := gridConfigs[gridSizeID]; ok {
		return cfg
	}
	return gridConfigs[DefaultGridSizeID]
}

// GridSizeIDs returns every supported identifier, ascending by total
// slots. Used by expansion planning and the CLI.
func GridSizeIDs() []string {
	ids := make([]string, 0, len(gridConfigs))
	for id := range gridConfigs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return gridConfigs[ids[i]].TotalSlots < gridConfigs[ids[j]].TotalSlots
	})
	return ids
}

// LargerGrids returns every grid configuration with more slots than the
// current one, ascending by total slots (prd002-capacity-planner R3.2).
func LargerGrids(current types.GridConfig) []types.GridConfig {
	var larger []types.GridConfig
	for _, id := range GridSizeIDs() {
		if cfg := gridConfigs[id]; cfg.TotalSlots > current.TotalSlots {
			larger = append(larger, cfg)
		}
	}
	return larger
}
