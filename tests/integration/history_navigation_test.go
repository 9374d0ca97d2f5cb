// Integration tests for history persistence and undo/redo navigation:
// entries recorded through the navigator, persisted in the store,
// reloaded on reopen, and resolved to page jumps through the addresser.
// Implements: test-uc002-history-navigation;
//             prd005-history-navigator R2-R6.
package integration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biroman/pkmnbindr/internal/history"
	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

func TestHistoryNavigation_PersistReloadNavigate(t *testing.T) {
	store := newAttachedStore(t)
	binderID := newBinder(t, store, "3x3", 5, 10)

	nav := history.New(layout.Resolve("3x3"))
	for _, e := range []types.HistoryEntry{
		{ActionKind: types.ActionAdd, Position: 2},
		{ActionKind: types.ActionMove, FromPosition: 2, ToPosition: 30},
		{ActionKind: types.ActionSwap, Position: 30, TargetPosition: 45},
	} {
		recorded := nav.Record(e)
		require.NoError(t, store.AppendHistory(binderID, recorded))
	}

	// A fresh navigator (new session) reloads the persisted log.
	reloaded := history.New(layout.Resolve("3x3"))
	persisted, err := store.ListHistory(binderID)
	require.NoError(t, err)
	require.Len(t, persisted, 3)
	reloaded.Load(persisted, -1)
	assert.Equal(t, -1, reloaded.Current())

	// Back from live lands on the newest entry; position 45 is binder page 3.
	target, ok := reloaded.NavigateBack()
	require.True(t, ok)
	assert.Equal(t, types.ActionSwap, target.Entry.ActionKind)
	assert.Equal(t, 3, target.Page)

	// Back again: the move entry, destination 30, binder page 2.
	target, ok = reloaded.NavigateBack()
	require.True(t, ok)
	assert.Equal(t, 2, target.Page)

	// Revert directly to the oldest entry regardless of the pointer.
	target, err = reloaded.RevertTo(persisted[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Current())
	assert.Equal(t, 0, target.Page)

	// Forward walks toward the newest entry again.
	target, ok = reloaded.NavigateForward()
	require.True(t, ok)
	assert.Equal(t, persisted[1].ID, target.Entry.ID)
}

// openNavigator rebuilds a navigator from persisted state the way a new
// process does: log and pointer both come from the store.
func openNavigator(t *testing.T, store types.BinderStore, binderID string) *history.Navigator {
	t.Helper()
	binder, err := store.GetBinder(binderID)
	require.NoError(t, err)
	nav := history.New(layout.Resolve(binder.Settings.GridSizeID))
	persisted, err := store.ListHistory(binderID)
	require.NoError(t, err)
	nav.Load(persisted, binder.HistoryPointer)
	return nav
}

func TestHistoryNavigation_PointerChainsAcrossSessions(t *testing.T) {
	store := newAttachedStore(t)
	binderID := newBinder(t, store, "3x3", 5, 10)

	nav := history.New(layout.Resolve("3x3"))
	for _, e := range []types.HistoryEntry{
		{ActionKind: types.ActionAdd, Position: 0},
		{ActionKind: types.ActionAdd, Position: 10},
		{ActionKind: types.ActionAdd, Position: 20},
	} {
		require.NoError(t, store.AppendHistory(binderID, nav.Record(e)))
	}

	// Session one: undo lands on the newest entry and persists the pointer.
	session := openNavigator(t, store, binderID)
	_, ok := session.NavigateBack()
	require.True(t, ok)
	require.NoError(t, store.SetHistoryPointer(binderID, session.Current()))

	// Session two: undo continues the chain instead of restarting at live.
	session = openNavigator(t, store, binderID)
	require.Equal(t, 2, session.Current())
	target, ok := session.NavigateBack()
	require.True(t, ok)
	assert.Equal(t, 10, target.Entry.Position)
	require.NoError(t, store.SetHistoryPointer(binderID, session.Current()))

	// Session three: redo walks forward from the persisted pointer.
	session = openNavigator(t, store, binderID)
	target, ok = session.NavigateForward()
	require.True(t, ok)
	assert.Equal(t, 20, target.Entry.Position)

	// Clearing the log resets the persisted pointer with it.
	require.NoError(t, store.ClearHistory(binderID))
	binder, err := store.GetBinder(binderID)
	require.NoError(t, err)
	assert.Equal(t, -1, binder.HistoryPointer)
}

func TestHistoryNavigation_ClearRequiresConfirmation(t *testing.T) {
	store := newAttachedStore(t)
	binderID := newBinder(t, store, "3x3", 2, 10)

	nav := history.New(layout.Resolve("3x3"))
	recorded := nav.Record(types.HistoryEntry{ActionKind: types.ActionAdd, Position: 0})
	require.NoError(t, store.AppendHistory(binderID, recorded))

	err := nav.Clear(false)
	assert.True(t, errors.Is(err, types.ErrNotConfirmed))

	require.NoError(t, nav.Clear(true))
	require.NoError(t, store.ClearHistory(binderID))

	persisted, err := store.ListHistory(binderID)
	require.NoError(t, err)
	assert.Empty(t, persisted)
	assert.Empty(t, nav.Entries())
}
