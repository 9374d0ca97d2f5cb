package layout

import "github.com/biroman/pkmnbindr/pkg/types"

// Page addressing mirrors a physical binder: page 0 is the cover and
// holds a single card-page; every further binder page is a two-sided
// spread holding two card-pages. Capacity math and page-jump navigation
// both depend on this asymmetry; it is intentional, not a simplification
// target. Implements: prd001-binder-core R2.3, R2.4.

// CardPages returns the number of card-pages a binder with pageCount
// pages exposes: one for the cover, two per page after it.
func CardPages(pageCount int) int {
	if pageCount <= 1 {
		return 1
	}
	return 1 + (pageCount-1)*2
}

// PositionToPage returns the binder page holding the given linear
// position under a grid with slotsPerPage slots per card-page.
func PositionToPage(position, slotsPerPage int) int {
	if slotsPerPage <= 0 || position < slotsPerPage {
		return 0
	}
	physicalPage := position / slotsPerPage
	// ceil(physicalPage/2): spreads pair card-pages after the cover.
	return (physicalPage + 1) / 2
}

// PositionToSlot returns the slot index of the position within its
// card-page.
func PositionToSlot(position, slotsPerPage int) int {
	if slotsPerPage <= 0 {
		return 0
	}
	return position % slotsPerPage
}

// Locate resolves a linear position to its full (page, slot) address.
func Locate(position, slotsPerPage int) types.PagePosition {
	return types.PagePosition{
		PageIndex: PositionToPage(position, slotsPerPage),
		SlotIndex: PositionToSlot(position, slotsPerPage),
	}
}

// PageToFirstPosition returns the first linear position on the given
// binder page: position 0 for the cover, otherwise the first slot of the
// page's left card-page.
func PageToFirstPosition(binderPage, slotsPerPage int) int {
	if binderPage <= 0 {
		return 0
	}
	return (2*binderPage - 1) * slotsPerPage
}

// NextPageBoundary rounds position up to the next card-page boundary.
// A position already on a boundary is returned unchanged.
func NextPageBoundary(position, slotsPerPage int) int {
	if slotsPerPage <= 0 {
		return position
	}
	if rem := position % slotsPerPage; rem != 0 {
		return position + slotsPerPage - rem
	}
	return position
}
