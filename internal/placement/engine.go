// Package placement turns a fetched set list into an ordered entry list
// and a positioned, capacity-checked plan for writing it into a binder.
// Planning is pure; Committer applies a finished plan against a store.
// Implements: prd003-set-placement;
//
//	docs/ARCHITECTURE § Set Placement.
package placement

import (
	"fmt"
	"time"

	"github.com/biroman/pkmnbindr/internal/capacity"
	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/internal/shift"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// variantSuffix marks a generated reverse-holo entry key. The first copy
// carries the bare suffix; further copies append their copy index so keys
// stay unique (prd003-set-placement R2.3).
const variantSuffix = "-rh"

// variantEligible is the closed set of rarity tiers that receive
// generated reverse-holo variants. Higher tiers never qualify.
var variantEligible = map[string]bool{
	types.RarityCommon:   true,
	types.RarityUncommon: true,
	types.RarityRare:     true,
	types.RarityRareHolo: true,
}

// Eligible reports whether a card's rarity qualifies it for generated
// variants.
func Eligible(card types.Card) bool {
	return variantEligible[card.Rarity]
}

// variantKey returns the entry key for the n-th variant copy of a card.
// Copy 0 is "<id>-rh"; later copies are "<id>-rh2", "<id>-rh3", ...
func variantKey(cardID string, n int) string {
	if n == 0 {
		return cardID + variantSuffix
	}
	return fmt.Sprintf("%s%s%d", cardID, variantSuffix, n+1)
}

// BuildEntries expands the fetched card list into the final ordered entry
// list per the config's variant and ordering policy. The output length is
// len(cards) + VariantCopies*|eligible| when variants are included,
// otherwise len(cards) (prd003-set-placement R3).
func BuildEntries(cards []types.Card, cfg types.PlacementConfig, now time.Time) []types.CardEntry {
	if !cfg.IncludeVariants {
		entries := make([]types.CardEntry, 0, len(cards))
		for _, c := range cards {
			entries = append(entries, sourceEntry(c, now))
		}
		return entries
	}

	switch cfg.VariantOrder {
	case types.VariantOrderFirst:
		var entries []types.CardEntry
		for _, c := range cards {
			if Eligible(c) {
				entries = append(entries, variantEntries(c, cfg.VariantCopies, now)...)
			}
		}
		for _, c := range cards {
			entries = append(entries, sourceEntry(c, now))
		}
		return entries

	case types.VariantOrderLast:
		var entries []types.CardEntry
		for _, c := range cards {
			entries = append(entries, sourceEntry(c, now))
		}
		for _, c := range cards {
			if Eligible(c) {
				entries = append(entries, variantEntries(c, cfg.VariantCopies, now)...)
			}
		}
		return entries

	default: // interleaved
		var entries []types.CardEntry
		for _, c := range cards {
			entries = append(entries, sourceEntry(c, now))
			if Eligible(c) {
				entries = append(entries, variantEntries(c, cfg.VariantCopies, now)...)
			}
		}
		return entries
	}
}

// sourceEntry converts a fetched card to its binder entry.
func sourceEntry(c types.Card, now time.Time) types.CardEntry {
	return types.CardEntry{
		Key:        c.ID,
		CardID:     c.ID,
		Name:       c.Name,
		Rarity:     c.Rarity,
		SetID:      c.SetID,
		InsertedAt: now,
	}
}

// variantEntries generates the configured number of variant copies for an
// eligible card.
func variantEntries(c types.Card, copies int, now time.Time) []types.CardEntry {
	entries := make([]types.CardEntry, 0, copies)
	for i := 0; i < copies; i++ {
		entries = append(entries, types.CardEntry{
			Key:        variantKey(c.ID, i),
			CardID:     c.ID,
			Name:       c.Name,
			Rarity:     c.Rarity,
			SetID:      c.SetID,
			IsVariant:  true,
			OriginalID: c.ID,
			InsertedAt: now,
		})
	}
	return entries
}

// Plan is a complete, capacity-checked set placement. It is computed in
// full before any write: needed slots, shift moves, and the positioned
// entry list are all settled up front (prd003-set-placement R5;
// docs/ARCHITECTURE § Plan-then-commit).
type Plan struct {
	BinderID      string
	SetID         string
	Config        types.PlacementConfig
	Entries       []types.CardEntry
	StartPosition int
	ShiftMoves    []types.Move // only for "start" placement
	ClearFirst    bool         // only for "replace" placement
	NeededSlots   int          // slots the plan requires beyond current usage
}

// BuildPlan validates the config, expands the card list, positions the
// block, and checks capacity. A plan that does not fit is rejected
// wholesale with a *types.CapacityError; no partial plan is returned
// (prd003-set-placement R5, R6).
func BuildPlan(binder *types.Binder, setID string, cards []types.Card, cfg types.PlacementConfig) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := layout.Resolve(binder.Settings.GridSizeID)
	now := time.Now().UTC()
	entries := BuildEntries(cards, cfg, now)
	bufferSlots := cfg.BufferPages * grid.TotalSlots

	plan := &Plan{
		BinderID: binder.ID,
		SetID:    setID,
		Config:   cfg,
		Entries:  entries,
	}

	switch cfg.Placement {
	case types.PlacementReplace:
		plan.ClearFirst = true
		plan.StartPosition = 0
		plan.NeededSlots = len(entries)
		if err := capacity.EnsureFits(binder, plan.NeededSlots, true); err != nil {
			return nil, err
		}

	case types.PlacementStart:
		offset := len(entries) + bufferSlots
		plan.StartPosition = 0
		plan.ShiftMoves = shift.PlanShift(binder.Positions(), offset)
		// The shifted highest position bounds the requirement, not the
		// raw slot count: a sparse binder can hold tail gaps that count
		// produces free slots for but the shift lands past.
		plan.NeededSlots = binder.HighestPosition() + 1 + offset - binder.UsedSlots()
		if err := capacity.EnsureFits(binder, plan.NeededSlots, false); err != nil {
			return nil, err
		}
		occupied := make(map[int]bool, len(binder.Cards))
		for pos := range binder.Cards {
			occupied[pos] = true
		}
		if err := shift.CheckPlan(plan.ShiftMoves, occupied); err != nil {
			return nil, err
		}

	case types.PlacementEnd:
		pageStart := layout.NextPageBoundary(binder.HighestPosition()+1, grid.TotalSlots)
		plan.StartPosition = pageStart + bufferSlots
		plan.NeededSlots = plan.StartPosition + len(entries) - binder.UsedSlots()
		if err := capacity.EnsureFits(binder, plan.NeededSlots, false); err != nil {
			return nil, err
		}
	}

	return plan, nil
}
