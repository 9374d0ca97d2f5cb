package shift

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biroman/pkmnbindr/pkg/types"
)

func TestPlanShift(t *testing.T) {
	t.Run("descending from order", func(t *testing.T) {
		got := PlanShift([]int{5, 3, 1}, 10)
		want := []types.Move{{From: 5, To: 15}, {From: 3, To: 13}, {From: 1, To: 11}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("plan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unsorted input is still planned descending", func(t *testing.T) {
		got := PlanShift([]int{1, 5, 3}, 10)
		want := []types.Move{{From: 5, To: 15}, {From: 3, To: 13}, {From: 1, To: 11}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("plan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		positions := []int{1, 5, 3}
		PlanShift(positions, 2)
		assert.Equal(t, []int{1, 5, 3}, positions)
	})

	t.Run("zero offset plans nothing", func(t *testing.T) {
		assert.Empty(t, PlanShift([]int{1, 2, 3}, 0))
	})

	t.Run("empty positions", func(t *testing.T) {
		assert.Empty(t, PlanShift(nil, 10))
	})
}

func TestCheckPlan(t *testing.T) {
	occupied := map[int]bool{0: true, 1: true, 2: true}

	t.Run("planned order is collision free", func(t *testing.T) {
		// Overlapping shift: 0..2 forward by 2.
		moves := PlanShift([]int{0, 1, 2}, 2)
		require.NoError(t, CheckPlan(moves, occupied))
	})

	t.Run("ascending order collides", func(t *testing.T) {
		moves := []types.Move{{From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}}
		err := CheckPlan(moves, occupied)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrMoveCollision))
	})
}
