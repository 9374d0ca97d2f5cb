package placement

import (
	"fmt"

	"github.com/biroman/pkmnbindr/internal/history"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// clearReasonTag is recorded by the store when a replace placement clears
// the binder.
const clearReasonTag = "set-placement-replace"

// Engine wires the placement planner to its collaborators: the card
// provider, the injected read-through cache, and the binder store. The
// cache is optional and fire-and-forget; correctness never depends on it
// (prd006-collaborators R3).
type Engine struct {
	Provider types.CardProvider
	Cache    types.CardCache
	Store    types.BinderStore
}

// FetchCards returns the set list, consulting the cache first and
// populating it after a provider fetch.
func (e *Engine) FetchCards(setID string) ([]types.Card, error) {
	if e.Cache != nil {
		if cards, ok := e.Cache.Get(setID); ok {
			return cards, nil
		}
	}
	cards, err := e.Provider.Fetch(setID)
	if err != nil {
		return nil, fmt.Errorf("fetching set %s: %w", setID, err)
	}
	if e.Cache != nil {
		e.Cache.Put(setID, cards)
	}
	return cards, nil
}

// PlanSet fetches the set and builds a full placement plan against the
// binder's current persisted state. Nothing is written.
func (e *Engine) PlanSet(binderID, setID string, cfg types.PlacementConfig) (*Plan, error) {
	binder, err := e.Store.GetBinder(binderID)
	if err != nil {
		return nil, fmt.Errorf("loading binder: %w", err)
	}
	cards, err := e.FetchCards(setID)
	if err != nil {
		return nil, err
	}
	return BuildPlan(binder, setID, cards, cfg)
}

// Commit applies a finished plan in the dictated order: shift existing
// content, clear (replace only), insert the block, then record the action
// in the navigator and the store's history log. Each step is attributed
// on failure and nothing after a failed step runs; the caller either gets
// a fully applied plan or an explicit, attributable error — never a
// silently partial state (prd003-set-placement R5.3).
func (e *Engine) Commit(plan *Plan, nav *history.Navigator) (types.HistoryEntry, error) {
	var none types.HistoryEntry

	if len(plan.ShiftMoves) > 0 {
		if err := e.Store.BatchMove(plan.BinderID, plan.ShiftMoves); err != nil {
			return none, fmt.Errorf("shift step: %w", err)
		}
	}

	if plan.ClearFirst {
		if _, err := e.Store.ClearItems(plan.BinderID, clearReasonTag); err != nil {
			return none, fmt.Errorf("clear step: %w", err)
		}
	}

	if err := e.Store.InsertAt(plan.BinderID, plan.Entries, plan.StartPosition, plan.ClearFirst); err != nil {
		return none, fmt.Errorf("insert step: %w", err)
	}

	entry := types.HistoryEntry{
		ActionKind:   types.ActionBulkMove,
		FromPosition: plan.StartPosition,
		ToPosition:   plan.StartPosition,
	}
	if nav == nil {
		if err := e.Store.AppendHistory(plan.BinderID, entry); err != nil {
			return none, fmt.Errorf("history step: %w", err)
		}
		return entry, nil
	}

	// Recording off the live pointer truncates the navigator's redo
	// tail; the persisted log must shed the same entries or the next
	// session reloads a tail the navigator discarded.
	discarded := nav.Current() != -1
	entry = nav.Record(entry)
	if discarded {
		if err := e.Store.ClearHistory(plan.BinderID); err != nil {
			return none, fmt.Errorf("history step: %w", err)
		}
		for _, kept := range nav.Entries() {
			if err := e.Store.AppendHistory(plan.BinderID, kept); err != nil {
				return none, fmt.Errorf("history step: %w", err)
			}
		}
	} else {
		if err := e.Store.AppendHistory(plan.BinderID, entry); err != nil {
			return none, fmt.Errorf("history step: %w", err)
		}
	}
	if err := e.Store.SetHistoryPointer(plan.BinderID, -1); err != nil {
		return none, fmt.Errorf("history step: %w", err)
	}
	return entry, nil
}

// ApplyExpansion commits a previously proposed expansion option. Options
// are suggestions; nothing changes until one is applied here
// (prd002-capacity-planner R3.1).
func (e *Engine) ApplyExpansion(binderID string, opt types.ExpansionOption) error {
	switch opt.Kind {
	case types.ExpansionGridResize:
		id := opt.GridSizeID
		if err := e.Store.UpdateSettings(binderID, types.SettingsPatch{GridSizeID: &id}); err != nil {
			return fmt.Errorf("grid resize: %w", err)
		}
		return nil
	case types.ExpansionAddPages:
		if err := e.Store.AddPages(binderID, opt.PagesToAdd); err != nil {
			return fmt.Errorf("page addition: %w", err)
		}
		return nil
	default:
		return types.ErrExpansionUnavailable
	}
}
