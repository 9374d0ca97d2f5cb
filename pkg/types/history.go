package types

import "time"

// History action kinds (prd005-history-navigator R1).
const (
	ActionAdd      = "add"
	ActionRemove   = "remove"
	ActionMove     = "move"
	ActionSwap     = "swap"
	ActionBulkMove = "bulkMove"
)

// HistoryEntry is one logged binder action. Entries are immutable once
// appended. Only the position fields relevant to the action kind are
// meaningful; RelevantPosition selects among them.
// Implements: prd005-history-navigator R1, R2.
type HistoryEntry struct {
	ID             string // UUID v7, generated on append
	ActionKind     string
	Position       int // add, remove
	FromPosition   int // move, bulkMove
	ToPosition     int // move, bulkMove
	TargetPosition int // swap
	CreatedAt      time.Time
}

// RelevantPosition returns the position field that drives page-jump
// navigation for this entry's action kind. The second return is false for
// unrecognized kinds (prd005-history-navigator R4.2).
func (e HistoryEntry) RelevantPosition() (int, bool) {
	switch e.ActionKind {
	case ActionAdd, ActionRemove:
		return e.Position, true
	case ActionMove, ActionBulkMove:
		return e.ToPosition, true
	case ActionSwap:
		return e.TargetPosition, true
	default:
		return 0, false
	}
}
