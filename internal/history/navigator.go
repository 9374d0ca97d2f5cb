// Package history keeps the append-only action log for a binder and the
// undo/redo pointer over it. The navigator never mutates binder content;
// it resolves each navigation to the binder page holding the affected
// position and reports that jump target to the caller, which performs the
// actual state revert.
// Implements: prd005-history-navigator;
//
//	docs/ARCHITECTURE § History Navigation.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// livePointer marks the navigator as viewing the live (newest) state.
const livePointer = -1

// JumpTarget is the side effect of a navigation: the entry now being
// viewed and the binder page and slot to jump to.
type JumpTarget struct {
	Entry types.HistoryEntry
	Page  int
	Slot  int
}

// Navigator is the undo/redo pointer over an append-only entry log.
// Safe for concurrent use.
type Navigator struct {
	mu           sync.Mutex
	slotsPerPage int
	entries      []types.HistoryEntry
	current      int // livePointer, or an index into entries
}

// New returns a Navigator addressing pages under the given grid.
func New(grid types.GridConfig) *Navigator {
	return &Navigator{
		slotsPerPage: grid.TotalSlots,
		current:      livePointer,
	}
}

// Record appends an entry to the log, generating its ID and timestamp.
// Recording while viewing a past state discards the redo tail beyond the
// pointer and returns viewing to the live state; the back/forward chain
// stays linear (docs/DECISIONS § discard-on-new-action).
func (n *Navigator) Record(entry types.HistoryEntry) types.HistoryEntry {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != livePointer {
		n.entries = n.entries[:n.current+1]
		n.current = livePointer
	}

	entry.ID = uuid.Must(uuid.NewV7()).String()
	entry.CreatedAt = time.Now().UTC()
	n.entries = append(n.entries, entry)
	return entry
}

// NavigateBack moves the pointer one step toward the oldest entry. From
// the live state it moves onto the newest entry. At the oldest entry it
// is a no-op. The second return is false when nothing changed.
func (n *Navigator) NavigateBack() (JumpTarget, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch {
	case len(n.entries) == 0:
		return JumpTarget{}, false
	case n.current == livePointer:
		n.current = len(n.entries) - 1
	case n.current > 0:
		n.current--
	default:
		return JumpTarget{}, false
	}
	return n.target(), true
}

// NavigateForward moves the pointer one step toward the newest entry.
// A no-op from the live state or from the newest entry.
func (n *Navigator) NavigateForward() (JumpTarget, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == livePointer || n.current >= len(n.entries)-1 {
		return JumpTarget{}, false
	}
	n.current++
	return n.target(), true
}

// RevertTo jumps the pointer directly to the entry with the given ID,
// independent of the back/forward chain. Returns ErrEntryNotFound when no
// entry has that ID.
func (n *Navigator) RevertTo(id string) (JumpTarget, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.ID == id {
			n.current = i
			return n.target(), nil
		}
	}
	return JumpTarget{}, types.ErrEntryNotFound
}

// Clear discards the entire log and resets the pointer. The operation is
// irreversible, so the caller must pass confirm explicitly; without it
// Clear fails with ErrNotConfirmed.
func (n *Navigator) Clear(confirm bool) error {
	if !confirm {
		return types.ErrNotConfirmed
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = nil
	n.current = livePointer
	return nil
}

// Entries returns a copy of the log, oldest first.
func (n *Navigator) Entries() []types.HistoryEntry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]types.HistoryEntry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Current returns the pointer: -1 when viewing the live state, otherwise
// the index of the entry whose applied state is being viewed.
func (n *Navigator) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Load replaces the log with persisted entries and restores the
// persisted pointer, so navigation chains continue across sessions. A
// pointer outside the log falls back to the live state. Used when
// reopening a binder.
func (n *Navigator) Load(entries []types.HistoryEntry, pointer int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = make([]types.HistoryEntry, len(entries))
	copy(n.entries, entries)
	n.current = livePointer
	if pointer >= 0 && pointer < len(n.entries) {
		n.current = pointer
	}
}

// target resolves the current entry to its jump target. Callers hold n.mu.
func (n *Navigator) target() JumpTarget {
	entry := n.entries[n.current]
	var addr types.PagePosition
	if pos, ok := entry.RelevantPosition(); ok {
		addr = layout.Locate(pos, n.slotsPerPage)
	}
	return JumpTarget{Entry: entry, Page: addr.PageIndex, Slot: addr.SlotIndex}
}
