package placement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biroman/pkmnbindr/internal/history"
	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// fakeStore is an in-memory BinderStore recording the order of mutating
// calls so commit sequencing can be asserted.
type fakeStore struct {
	binder  *types.Binder
	history []types.HistoryEntry
	pointer int
	calls   []string
	failOn  string // step name that should fail, empty for none
}

var errInjected = errors.New("injected store failure")

func (s *fakeStore) Attach(types.Config) error { return nil }
func (s *fakeStore) Detach() error             { return nil }

func (s *fakeStore) CreateBinder(id string, b *types.Binder) (string, error) {
	s.binder = b
	return b.ID, nil
}

func (s *fakeStore) GetBinder(id string) (*types.Binder, error) {
	if s.binder == nil || s.binder.ID != id {
		return nil, types.ErrBinderNotFound
	}
	return s.binder, nil
}

func (s *fakeStore) GetPageCount(string) (int, error) {
	return s.binder.Settings.PageCount, nil
}

func (s *fakeStore) UpdateSettings(id string, patch types.SettingsPatch) error {
	s.calls = append(s.calls, "updateSettings")
	if patch.GridSizeID != nil {
		s.binder.Settings.GridSizeID = *patch.GridSizeID
	}
	return nil
}

func (s *fakeStore) AddPages(id string, n int) error {
	s.calls = append(s.calls, "addPages")
	s.binder.Settings.PageCount += n
	return nil
}

func (s *fakeStore) BatchMove(id string, moves []types.Move) error {
	s.calls = append(s.calls, "batchMove")
	if s.failOn == "batchMove" {
		return errInjected
	}
	for _, m := range moves {
		if _, occupied := s.binder.Cards[m.To]; occupied {
			return types.ErrMoveCollision
		}
		entry, ok := s.binder.Cards[m.From]
		if !ok {
			return types.ErrEntryNotFound
		}
		delete(s.binder.Cards, m.From)
		s.binder.Cards[m.To] = entry
	}
	return nil
}

func (s *fakeStore) ClearItems(id, reason string) (int, error) {
	s.calls = append(s.calls, "clearItems")
	if s.failOn == "clearItems" {
		return 0, errInjected
	}
	n := len(s.binder.Cards)
	s.binder.Cards = map[int]types.CardEntry{}
	return n, nil
}

func (s *fakeStore) InsertAt(id string, entries []types.CardEntry, start int, replace bool) error {
	s.calls = append(s.calls, "insertAt")
	if s.failOn == "insertAt" {
		return errInjected
	}
	for i, e := range entries {
		pos := start + i
		if _, occupied := s.binder.Cards[pos]; occupied && !replace {
			return types.ErrPositionOccupied
		}
		s.binder.Cards[pos] = e
	}
	return nil
}

func (s *fakeStore) AppendHistory(id string, entry types.HistoryEntry) error {
	s.calls = append(s.calls, "appendHistory")
	s.history = append(s.history, entry)
	return nil
}

func (s *fakeStore) ListHistory(string) ([]types.HistoryEntry, error) { return s.history, nil }

func (s *fakeStore) SetHistoryPointer(id string, pointer int) error {
	s.calls = append(s.calls, "setHistoryPointer")
	s.pointer = pointer
	return nil
}

func (s *fakeStore) ClearHistory(string) error {
	s.calls = append(s.calls, "clearHistory")
	s.history = nil
	s.pointer = -1
	return nil
}

// fakeProvider serves a fixed list and counts fetches.
type fakeProvider struct {
	cards   []types.Card
	fetches int
}

func (p *fakeProvider) Fetch(setID string) ([]types.Card, error) {
	p.fetches++
	return p.cards, nil
}

// mapCache is the simplest possible CardCache.
type mapCache map[string][]types.Card

func (c mapCache) Get(setID string) ([]types.Card, bool) {
	cards, ok := c[setID]
	return cards, ok
}

func (c mapCache) Put(setID string, cards []types.Card) { c[setID] = cards }

func newEngine(cards []types.Card, existing map[int]types.CardEntry) (*Engine, *fakeStore, *fakeProvider) {
	if existing == nil {
		existing = map[int]types.CardEntry{}
	}
	store := &fakeStore{pointer: -1, binder: &types.Binder{
		ID:             "b1",
		Cards:          existing,
		HistoryPointer: -1,
		Settings: types.BinderSettings{
			GridSizeID: "3x3",
			PageCount:  4,
			MaxPages:   10,
		},
	}}
	provider := &fakeProvider{cards: cards}
	return &Engine{Provider: provider, Cache: mapCache{}, Store: store}, store, provider
}

func TestFetchCards(t *testing.T) {
	t.Run("read-through caching", func(t *testing.T) {
		engine, _, provider := newEngine(makeSet(5, 2), nil)

		first, err := engine.FetchCards("swsh1")
		require.NoError(t, err)
		second, err := engine.FetchCards("swsh1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, provider.fetches)
	})

	t.Run("nil cache is fine", func(t *testing.T) {
		engine, _, provider := newEngine(makeSet(2, 0), nil)
		engine.Cache = nil
		_, err := engine.FetchCards("swsh1")
		require.NoError(t, err)
		_, err = engine.FetchCards("swsh1")
		require.NoError(t, err)
		assert.Equal(t, 2, provider.fetches)
	})
}

func TestCommitOrdering(t *testing.T) {
	t.Run("start placement shifts before inserting", func(t *testing.T) {
		existing := map[int]types.CardEntry{
			0: {Key: "old-a"},
			1: {Key: "old-b"},
		}
		engine, store, _ := newEngine(makeSet(5, 0), existing)
		nav := history.New(layout.Resolve("3x3"))

		cfg := types.PlacementConfig{Placement: types.PlacementStart, BufferPages: 1}
		plan, err := engine.PlanSet("b1", "swsh1", cfg)
		require.NoError(t, err)

		entry, err := engine.Commit(plan, nav)
		require.NoError(t, err)
		assert.Equal(t, []string{"batchMove", "insertAt", "appendHistory", "setHistoryPointer"}, store.calls)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, -1, store.pointer)

		// Every original entry ended past the block and buffer.
		offset := 5 + 9
		for pos, e := range store.binder.Cards {
			if e.Key == "old-a" || e.Key == "old-b" {
				assert.GreaterOrEqual(t, pos, offset)
			}
		}
		// No position lost: 2 originals + 5 placed.
		assert.Len(t, store.binder.Cards, 7)
	})

	t.Run("replace clears then inserts", func(t *testing.T) {
		existing := map[int]types.CardEntry{3: {Key: "old"}}
		engine, store, _ := newEngine(makeSet(4, 0), existing)

		plan, err := engine.PlanSet("b1", "swsh1", types.PlacementConfig{Placement: types.PlacementReplace})
		require.NoError(t, err)
		_, err = engine.Commit(plan, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"clearItems", "insertAt", "appendHistory"}, store.calls)
		assert.Len(t, store.binder.Cards, 4)
		_, hasOld := store.binder.Cards[3]
		assert.True(t, hasOld) // position 3 now holds a placed card
	})

	t.Run("commit off the live pointer truncates the persisted log", func(t *testing.T) {
		engine, store, _ := newEngine(makeSet(3, 0), nil)
		nav := history.New(layout.Resolve("3x3"))
		for _, e := range []types.HistoryEntry{
			{ActionKind: types.ActionAdd, Position: 0},
			{ActionKind: types.ActionAdd, Position: 1},
			{ActionKind: types.ActionRemove, Position: 1},
		} {
			store.history = append(store.history, nav.Record(e))
		}
		nav.NavigateBack()
		nav.NavigateBack()
		require.Equal(t, 1, nav.Current())
		store.calls = nil

		plan, err := engine.PlanSet("b1", "swsh1", types.PlacementConfig{Placement: types.PlacementEnd})
		require.NoError(t, err)
		_, err = engine.Commit(plan, nav)
		require.NoError(t, err)

		// The remove entry past the pointer is gone from the store too;
		// the new action follows the kept pair and the pointer is live.
		require.Len(t, store.history, 3)
		assert.Equal(t, types.ActionAdd, store.history[1].ActionKind)
		assert.Equal(t, types.ActionBulkMove, store.history[2].ActionKind)
		assert.Equal(t, -1, store.pointer)
		assert.Contains(t, store.calls, "clearHistory")
	})

	t.Run("end placement touches nothing existing", func(t *testing.T) {
		existing := map[int]types.CardEntry{2: {Key: "old"}}
		engine, store, _ := newEngine(makeSet(3, 0), existing)

		plan, err := engine.PlanSet("b1", "swsh1", types.PlacementConfig{Placement: types.PlacementEnd})
		require.NoError(t, err)
		_, err = engine.Commit(plan, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"insertAt", "appendHistory"}, store.calls)
		assert.Equal(t, "old", store.binder.Cards[2].Key)
		_, placed := store.binder.Cards[9]
		assert.True(t, placed, "block should start on the next card-page boundary")
	})
}

func TestCommitFailFast(t *testing.T) {
	t.Run("shift failure stops the plan", func(t *testing.T) {
		existing := map[int]types.CardEntry{0: {Key: "old"}}
		engine, store, _ := newEngine(makeSet(3, 0), existing)
		store.failOn = "batchMove"

		plan, err := engine.PlanSet("b1", "swsh1", types.PlacementConfig{Placement: types.PlacementStart})
		require.NoError(t, err)
		_, err = engine.Commit(plan, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shift step")
		assert.Equal(t, []string{"batchMove"}, store.calls)
	})

	t.Run("insert failure is attributed", func(t *testing.T) {
		engine, store, _ := newEngine(makeSet(3, 0), nil)
		store.failOn = "insertAt"

		plan, err := engine.PlanSet("b1", "swsh1", types.PlacementConfig{Placement: types.PlacementEnd})
		require.NoError(t, err)
		_, err = engine.Commit(plan, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert step")
		assert.True(t, errors.Is(err, errInjected))
	})
}

func TestApplyExpansion(t *testing.T) {
	engine, store, _ := newEngine(nil, nil)

	t.Run("grid resize", func(t *testing.T) {
		err := engine.ApplyExpansion("b1", types.ExpansionOption{
			Kind: types.ExpansionGridResize, GridSizeID: "4x4",
		})
		require.NoError(t, err)
		assert.Equal(t, "4x4", store.binder.Settings.GridSizeID)
	})

	t.Run("add pages", func(t *testing.T) {
		err := engine.ApplyExpansion("b1", types.ExpansionOption{
			Kind: types.ExpansionAddPages, PagesToAdd: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, store.binder.Settings.PageCount)
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := engine.ApplyExpansion("b1", types.ExpansionOption{Kind: "shrink"})
		assert.True(t, errors.Is(err, types.ErrExpansionUnavailable))
	})
}
