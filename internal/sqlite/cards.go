// Card placement operations for the SQLite store: batch moves, clears,
// and block inserts. Every multi-row write runs in a single transaction;
// a failed step rolls the whole batch back so no partial plan is ever
// visible (prd007-sqlite-store R4).
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// BatchMove applies the moves in their given order inside one
// transaction. Move plans arrive ordered by descending source position;
// a destination that is still occupied means the caller broke that
// ordering and fails the batch with ErrMoveCollision.
func (s *Store) BatchMove(binderID string, moves []types.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range moves {
		occupied, err := positionOccupied(tx, binderID, m.To)
		if err != nil {
			return err
		}
		if occupied {
			return types.ErrMoveCollision
		}

		res, err := tx.Exec(
			"UPDATE binder_cards SET position = ? WHERE binder_id = ? AND position = ?",
			m.To, binderID, m.From)
		if err != nil {
			return fmt.Errorf("moving %d to %d: %w", m.From, m.To, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("moving %d to %d: %w", m.From, m.To, types.ErrEntryNotFound)
		}
	}

	return tx.Commit()
}

// ClearItems removes every card entry from the binder, logs the clear
// with its reason tag, and returns the number removed.
func (s *Store) ClearItems(binderID string, reasonTag string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM binder_cards WHERE binder_id = ?", binderID)
	if err != nil {
		return 0, fmt.Errorf("clearing cards: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		`INSERT INTO clear_log (clear_id, binder_id, reason_tag, cleared_count, cleared_at)
		 VALUES (?, ?, ?, ?, ?)`,
		newUUID(), binderID, reasonTag, n, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("logging clear: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(n), nil
}

// InsertAt writes entries at consecutive positions from startPosition in
// one transaction. Without replace, a target position that is already
// occupied fails the whole batch with ErrPositionOccupied.
func (s *Store) InsertAt(binderID string, entries []types.CardEntry, startPosition int, replace bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, entry := range entries {
		pos := startPosition + i
		if !replace {
			occupied, err := positionOccupied(tx, binderID, pos)
			if err != nil {
				return err
			}
			if occupied {
				return fmt.Errorf("position %d: %w", pos, types.ErrPositionOccupied)
			}
		} else {
			if _, err := tx.Exec(
				"DELETE FROM binder_cards WHERE binder_id = ? AND position = ?",
				binderID, pos); err != nil {
				return err
			}
		}
		if err := insertCard(tx, binderID, pos, entry); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// insertCard writes one binder_cards row.
func insertCard(tx *sql.Tx, binderID string, pos int, entry types.CardEntry) error {
	var originalID any
	if entry.OriginalID != "" {
		originalID = entry.OriginalID
	}
	insertedAt := entry.InsertedAt
	if insertedAt.IsZero() {
		insertedAt = time.Now().UTC()
	}
	_, err := tx.Exec(
		`INSERT INTO binder_cards
		 (binder_id, position, card_key, card_id, name, rarity, set_id, is_variant, original_id, inserted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		binderID, pos, entry.Key, entry.CardID, entry.Name, entry.Rarity,
		entry.SetID, boolToInt(entry.IsVariant), originalID,
		insertedAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("inserting card %s at %d: %w", entry.Key, pos, err)
	}
	return nil
}

// hydrateCards loads every binder_cards row into the binder's card map.
func (s *Store) hydrateCards(binder *types.Binder) error {
	rows, err := s.db.Query(
		`SELECT position, card_key, card_id, name, rarity, set_id, is_variant, original_id, inserted_at
		 FROM binder_cards WHERE binder_id = ?`, binder.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pos, isVariant int
		var entry types.CardEntry
		var originalID sql.NullString
		var insertedAt string
		if err := rows.Scan(&pos, &entry.Key, &entry.CardID, &entry.Name,
			&entry.Rarity, &entry.SetID, &isVariant, &originalID, &insertedAt); err != nil {
			return err
		}
		entry.IsVariant = isVariant != 0
		entry.OriginalID = originalID.String
		if entry.InsertedAt, err = time.Parse(timeFormat, insertedAt); err != nil {
			return fmt.Errorf("parsing inserted_at: %w", err)
		}
		binder.Cards[pos] = entry
	}
	return rows.Err()
}

// positionOccupied reports whether the position holds an entry.
func positionOccupied(tx *sql.Tx, binderID string, pos int) (bool, error) {
	var one int
	err := tx.QueryRow(
		"SELECT 1 FROM binder_cards WHERE binder_id = ? AND position = ?",
		binderID, pos).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
