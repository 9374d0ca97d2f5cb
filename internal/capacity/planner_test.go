package capacity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// testBinder returns a binder with the given grid, page count, and n cards
// occupying positions 0..n-1.
func testBinder(gridSizeID string, pages, maxPages, n int) *types.Binder {
	cards := make(map[int]types.CardEntry, n)
	for i := 0; i < n; i++ {
		cards[i] = types.CardEntry{Key: "card-" + string(rune('a'+i%26))}
	}
	return &types.Binder{
		ID:    "b1",
		Cards: cards,
		Settings: types.BinderSettings{
			GridSizeID: gridSizeID,
			PageCount:  pages,
			MaxPages:   maxPages,
		},
	}
}

func TestComputeCapacity(t *testing.T) {
	t.Run("single page binder", func(t *testing.T) {
		info := ComputeCapacity(testBinder("3x3", 1, 10, 4), false)
		assert.Equal(t, 9, info.TotalSlots)
		assert.Equal(t, 4, info.UsedSlots)
		assert.Equal(t, 5, info.AvailableSlots)
	})

	t.Run("cover plus spreads", func(t *testing.T) {
		// 5 pages: 1 + 4*2 = 9 card-pages.
		info := ComputeCapacity(testBinder("3x3", 5, 10, 0), false)
		assert.Equal(t, 81, info.TotalSlots)
		assert.Equal(t, 5, info.CurrentPages)
	})

	t.Run("willClear zeroes used slots", func(t *testing.T) {
		info := ComputeCapacity(testBinder("3x3", 2, 10, 20), true)
		assert.Equal(t, 27, info.TotalSlots)
		assert.Equal(t, 0, info.UsedSlots)
		assert.Equal(t, 27, info.AvailableSlots)
	})

	t.Run("unknown grid resolves to default", func(t *testing.T) {
		info := ComputeCapacity(testBinder("9x9", 1, 10, 0), false)
		assert.Equal(t, 9, info.TotalSlots)
	})
}

func TestComputeExpansionOptions(t *testing.T) {
	t.Run("empty when plan fits", func(t *testing.T) {
		b := testBinder("3x3", 2, 10, 0) // 27 slots free
		assert.Empty(t, ComputeExpansionOptions(b, 27, false))
	})

	t.Run("grid options precede page option", func(t *testing.T) {
		b := testBinder("2x2", 3, 10, 0) // 5 card-pages * 4 = 20 slots
		opts := ComputeExpansionOptions(b, 40, false)
		require.NotEmpty(t, opts)

		sawPages := false
		for _, opt := range opts {
			if opt.Kind == types.ExpansionAddPages {
				sawPages = true
				continue
			}
			assert.False(t, sawPages, "grid option after page option")
			assert.Equal(t, types.ExpansionGridResize, opt.Kind)
		}
		assert.True(t, sawPages)
	})

	t.Run("every option covers the need", func(t *testing.T) {
		b := testBinder("2x2", 3, 20, 10)
		needed := 40
		for _, opt := range ComputeExpansionOptions(b, needed, false) {
			avail := opt.NewCapacity - b.UsedSlots()
			assert.GreaterOrEqual(t, avail, needed, "option %s", opt.Label)
			assert.GreaterOrEqual(t, opt.NewCapacity, needed)
		}
	})

	t.Run("all viable grid sizes emitted, not first fit", func(t *testing.T) {
		b := testBinder("2x2", 3, 3, 0) // 20 slots; page addition blocked by maxPages
		opts := ComputeExpansionOptions(b, 50, false)
		var ids []string
		for _, opt := range opts {
			require.Equal(t, types.ExpansionGridResize, opt.Kind)
			ids = append(ids, opt.GridSizeID)
		}
		// 5 card-pages: 3x3 gives 45 (too small), 4x3 gives 60, 4x4 gives 80.
		assert.Equal(t, []string{"4x3", "4x4"}, ids)
	})

	t.Run("page option respects maxPages", func(t *testing.T) {
		b := testBinder("4x4", 4, 4, 0)
		opts := ComputeExpansionOptions(b, 500, false)
		assert.Empty(t, opts)
	})

	t.Run("willClear shortfall ignores existing content", func(t *testing.T) {
		b := testBinder("3x3", 2, 10, 27) // full, 27 slots total
		// Replacing with 27 cards needs no expansion at all.
		assert.Empty(t, ComputeExpansionOptions(b, 27, true))
		// Without willClear the same request is short 27 slots.
		assert.NotEmpty(t, ComputeExpansionOptions(b, 27, false))
	})

	t.Run("pagesNeeded rounds up", func(t *testing.T) {
		b := testBinder("3x3", 1, 10, 9) // full cover, 9 slots
		opts := ComputeExpansionOptions(b, 19, false)
		var pageOpt *types.ExpansionOption
		for i := range opts {
			if opts[i].Kind == types.ExpansionAddPages {
				pageOpt = &opts[i]
			}
		}
		require.NotNil(t, pageOpt)
		// Shortfall 19, 18 slots per new page: two pages.
		assert.Equal(t, 2, pageOpt.PagesToAdd)
		assert.Equal(t, 36, pageOpt.AdditionalSlots)
	})
}

func TestEnsureFits(t *testing.T) {
	t.Run("fits exactly", func(t *testing.T) {
		b := testBinder("3x3", 1, 10, 3)
		require.NoError(t, EnsureFits(b, 6, false))
	})

	t.Run("overflow reports shortfall", func(t *testing.T) {
		b := testBinder("3x3", 1, 10, 3)
		err := EnsureFits(b, 10, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrCapacityExceeded))

		var capErr *types.CapacityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, 10, capErr.Needed)
		assert.Equal(t, 6, capErr.Available)
		assert.Equal(t, 4, capErr.Shortfall)
	})

	t.Run("willClear checks against total", func(t *testing.T) {
		b := testBinder("3x3", 1, 10, 9)
		require.NoError(t, EnsureFits(b, 9, true))
		require.Error(t, EnsureFits(b, 10, true))
	})
}
