// Package sqlite provides the public API for the SQLite binder store.
// This package exposes the factory function for creating SQLite stores
// while keeping implementation details internal.
//
// Implements: prd007-sqlite-store R1 (store factory);
//
//	docs/ARCHITECTURE § Public API.
package sqlite

import (
	"github.com/biroman/pkmnbindr/internal/sqlite"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// NewStore creates a new SQLite store instance.
// The store is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".pkmnbindr-db",
//	})
//	defer store.Detach()
func NewStore() types.BinderStore {
	return sqlite.NewStore()
}
