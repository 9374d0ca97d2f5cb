// History log persistence for the SQLite store.
// Implements: prd006-collaborators R2.8; prd005-history-navigator R6
// (persisted log reloaded into the navigator on binder open).
package sqlite

import (
	"fmt"
	"time"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// AppendHistory persists one history entry for the binder. Entries
// arriving without an ID get a UUID v7; entries are immutable once
// written.
func (s *Store) AppendHistory(binderID string, entry types.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = newUUID()
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO history
		 (entry_id, binder_id, action_kind, position, from_position, to_position, target_position, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, binderID, entry.ActionKind, entry.Position,
		entry.FromPosition, entry.ToPosition, entry.TargetPosition,
		createdAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// ListHistory returns the binder's history entries oldest first.
func (s *Store) ListHistory(binderID string) ([]types.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT entry_id, action_kind, position, from_position, to_position, target_position, created_at
		 FROM history WHERE binder_id = ? ORDER BY created_at, entry_id`, binderID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.ActionKind, &e.Position,
			&e.FromPosition, &e.ToPosition, &e.TargetPosition, &createdAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetHistoryPointer persists the binder's undo/redo position so a later
// session resumes navigation from the same entry.
func (s *Store) SetHistoryPointer(binderID string, pointer int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE binders SET history_pointer = ? WHERE binder_id = ?",
		pointer, binderID)
	if err != nil {
		return fmt.Errorf("setting history pointer: %w", err)
	}
	return requireRow(res)
}

// ClearHistory discards the binder's entire history log and resets its
// pointer to the live state.
func (s *Store) ClearHistory(binderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM history WHERE binder_id = ?", binderID); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	if _, err := s.db.Exec(
		"UPDATE binders SET history_pointer = -1 WHERE binder_id = ?", binderID); err != nil {
		return fmt.Errorf("resetting history pointer: %w", err)
	}
	return nil
}
