// Shared helpers for integration tests.
package integration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biroman/pkmnbindr/internal/capacity"
	"github.com/biroman/pkmnbindr/pkg/sqlite"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// newAttachedStore returns a SQLite store attached over a temp directory,
// detached on test cleanup.
func newAttachedStore(t *testing.T) types.BinderStore {
	t.Helper()
	store := sqlite.NewStore()
	require.NoError(t, store.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { store.Detach() })
	return store
}

// newBinder creates a binder with the given shape and returns its ID.
func newBinder(t *testing.T, store types.BinderStore, gridSizeID string, pages, maxPages int) string {
	t.Helper()
	id, err := store.CreateBinder("", &types.Binder{
		Name:  "Integration binder",
		Cards: map[int]types.CardEntry{},
		Settings: types.BinderSettings{
			GridSizeID: gridSizeID,
			PageCount:  pages,
			MaxPages:   maxPages,
		},
	})
	require.NoError(t, err)
	return id
}

// setList builds n cards with the given share of variant-eligible tiers
// at the front of the list.
func setList(setID string, n, eligible int) []types.Card {
	tiers := []string{types.RarityCommon, types.RarityUncommon, types.RarityRare, types.RarityRareHolo}
	cards := make([]types.Card, 0, n)
	for i := 0; i < n; i++ {
		rarity := "Rare Ultra"
		if i < eligible {
			rarity = tiers[i%len(tiers)]
		}
		cards = append(cards, types.Card{
			ID:             fmt.Sprintf("%s-%d", setID, i+1),
			Name:           fmt.Sprintf("Card %d", i+1),
			Rarity:         rarity,
			SetID:          setID,
			SequenceNumber: i + 1,
		})
	}
	return cards
}

// expansionOptions returns the planner's options for fitting neededSlots
// into a binder that will be cleared first.
func expansionOptions(binder *types.Binder, neededSlots int) []types.ExpansionOption {
	return capacity.ComputeExpansionOptions(binder, neededSlots, true)
}

// listProvider serves fixed set lists.
type listProvider map[string][]types.Card

func (p listProvider) Fetch(setID string) ([]types.Card, error) {
	cards, ok := p[setID]
	if !ok {
		return nil, fmt.Errorf("unknown set %s", setID)
	}
	return cards, nil
}
