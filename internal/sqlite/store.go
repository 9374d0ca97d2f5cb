// Package sqlite implements the SQLite binder store.
// Implements: prd006-collaborators R2 (BinderStore operations);
//
//	prd007-sqlite-store R1-R6 (lifecycle, schema, transactions);
//	docs/ARCHITECTURE § SQLite Store.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/biroman/pkmnbindr/pkg/types"
)

// Compile-time interface check: Store must implement BinderStore.
var _ types.BinderStore = (*Store)(nil)

//dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "binders.db"

// timeFormat is how timestamps are stored; lexicographic order matches
// chronological order.
const timeFormat = time.RFC3339Nano

// Store implements the BinderStore interface over a single SQLite file.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Attach opens (or creates) the database under config.DataDir and applies
// the schema. Returns ErrAlreadyAttached if called while attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached store
// succeeds.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.attached = false
	return err
}

// guard returns ErrStoreDetached when the store is not attached.
// Callers hold s.mu (read or write).
func (s *Store) guard() error {
	if !s.attached {
		return types.ErrStoreDetached
	}
	return nil
}
