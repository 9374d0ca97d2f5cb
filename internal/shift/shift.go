// Package shift plans the moves that make room for a block inserted in
// front of existing binder content.
// Implements: prd004-position-shifter;
//
//	docs/ARCHITECTURE § Position Shifting.
package shift

import (
	"sort"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// PlanShift returns the moves that relocate every given position forward
// by offset. Moves are ordered by descending From; this ordering is part
// of the contract. Source and destination ranges overlap under a forward
// shift, so applying in ascending order would overwrite entries not yet
// relocated (prd004-position-shifter R2).
func PlanShift(positions []int, offset int) []types.Move {
	if offset == 0 || len(positions) == 0 {
		return nil
	}

	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	moves := make([]types.Move, 0, len(sorted))
	for _, pos := range sorted {
		moves = append(moves, types.Move{From: pos, To: pos + offset})
	}
	return moves
}

// CheckPlan verifies that applying moves in their given order against the
// occupied set never lands on a still-occupied position. Plans from
// PlanShift cannot fail this check; a failure means the caller reordered
// the plan and is reported as ErrMoveCollision (prd004-position-shifter R3).
func CheckPlan(moves []types.Move, occupied map[int]bool) error {
	state := make(map[int]bool, len(occupied))
	for pos, ok := range occupied {
		if ok {
			state[pos] = true
		}
	}
	for _, m := range moves {
		if state[m.To] {
			return types.ErrMoveCollision
		}
		delete(state, m.From)
		state[m.To] = true
	}
	return nil
}
