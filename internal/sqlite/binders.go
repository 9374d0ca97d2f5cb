// Binder row operations for the SQLite store.
// Implements: prd006-collaborators R2.1-R2.4 (binder CRUD, settings,
// page growth); prd007-sqlite-store R3 (hydration).
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// CreateBinder persists a new binder and its cards. When id is empty a
// UUID v7 is generated. Returns the actual ID used.
func (s *Store) CreateBinder(id string, binder *types.Binder) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return "", err
	}
	if binder.Name == "" {
		return "", types.ErrInvalidName
	}

	if id == "" {
		id = newUUID()
	}
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO binders (binder_id, name, grid_size_id, page_count, max_pages, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, binder.Name, binder.Settings.GridSizeID, binder.Settings.PageCount,
		binder.Settings.MaxPages, now.Format(timeFormat), now.Format(timeFormat),
	)
	if err != nil {
		return "", fmt.Errorf("creating binder: %w", err)
	}

	for pos, entry := range binder.Cards {
		if err := insertCard(tx, id, pos, entry); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	binder.ID = id
	binder.CreatedAt = now
	binder.UpdatedAt = now
	return id, nil
}

// GetBinder retrieves a binder snapshot with all its cards.
// Returns ErrBinderNotFound when no binder has that ID.
func (s *Store) GetBinder(id string) (*types.Binder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		`SELECT binder_id, name, grid_size_id, page_count, max_pages, history_pointer, created_at, updated_at
		 FROM binders WHERE binder_id = ?`, id)

	binder, err := hydrateBinder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrBinderNotFound
		}
		return nil, fmt.Errorf("getting binder %s: %w", id, err)
	}

	if err := s.hydrateCards(binder); err != nil {
		return nil, fmt.Errorf("hydrating cards for binder %s: %w", id, err)
	}
	return binder, nil
}

// GetPageCount returns the binder's current page count.
func (s *Store) GetPageCount(binderID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRow(
		"SELECT page_count FROM binders WHERE binder_id = ?", binderID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, types.ErrBinderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("getting page count: %w", err)
	}
	return count, nil
}

// UpdateSettings applies a partial settings update. Nil patch fields are
// left unchanged.
func (s *Store) UpdateSettings(binderID string, patch types.SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}
	if patch.GridSizeID == nil {
		return nil
	}

	res, err := s.db.Exec(
		"UPDATE binders SET grid_size_id = ?, updated_at = ? WHERE binder_id = ?",
		*patch.GridSizeID, time.Now().UTC().Format(timeFormat), binderID)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return requireRow(res)
}

// AddPages grows the binder by n pages, honoring its MaxPages ceiling.
func (s *Store) AddPages(binderID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	var pages, maxPages int
	err := s.db.QueryRow(
		"SELECT page_count, max_pages FROM binders WHERE binder_id = ?",
		binderID).Scan(&pages, &maxPages)
	if err == sql.ErrNoRows {
		return types.ErrBinderNotFound
	}
	if err != nil {
		return fmt.Errorf("reading page count: %w", err)
	}
	if pages+n > maxPages {
		return types.ErrMaxPagesExceeded
	}

	_, err = s.db.Exec(
		"UPDATE binders SET page_count = ?, updated_at = ? WHERE binder_id = ?",
		pages+n, time.Now().UTC().Format(timeFormat), binderID)
	if err != nil {
		return fmt.Errorf("adding pages: %w", err)
	}
	return nil
}

// hydrateBinder scans a binders row into a Binder with an empty card map.
func hydrateBinder(row *sql.Row) (*types.Binder, error) {
	var b types.Binder
	var createdAt, updatedAt string
	err := row.Scan(&b.ID, &b.Name, &b.Settings.GridSizeID,
		&b.Settings.PageCount, &b.Settings.MaxPages, &b.HistoryPointer,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if b.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if b.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	b.Cards = make(map[int]types.CardEntry)
	return &b, nil
}

// requireRow converts a zero-row update into ErrBinderNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrBinderNotFound
	}
	return nil
}
