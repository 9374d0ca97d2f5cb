package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantSlots int
	}{
		{"2x2", "2x2", 4},
		{"3x3", "3x3", 9},
		{"4x3", "4x3", 12},
		{"4x4", "4x4", 16},
		{"unknown falls back to default", "5x5", 9},
		{"empty falls back to default", "", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Resolve(tt.id)
			assert.Equal(t, tt.wantSlots, cfg.TotalSlots)
			assert.Equal(t, cfg.Columns*cfg.Rows, cfg.TotalSlots)
		})
	}
}

func TestGridSizeIDs(t *testing.T) {
	ids := GridSizeIDs()
	require.Len(t, ids, 4)
	// Ascending by total slots.
	for i := 1; i < len(ids); i++ {
		assert.Less(t, Resolve(ids[i-1]).TotalSlots, Resolve(ids[i]).TotalSlots)
	}
}

func TestLargerGrids(t *testing.T) {
	t.Run("from 3x3", func(t *testing.T) {
		larger := LargerGrids(Resolve("3x3"))
		require.Len(t, larger, 2)
		assert.Equal(t, "4x3", larger[0].ID)
		assert.Equal(t, "4x4", larger[1].ID)
	})

	t.Run("from largest", func(t *testing.T) {
		assert.Empty(t, LargerGrids(Resolve("4x4")))
	})
}
