package types

// SettingsPatch is a partial update to binder settings. Nil fields are
// left unchanged (prd006-collaborators R2.2).
type SettingsPatch struct {
	GridSizeID *string
}

// BinderStore defines the interface for binder persistence. The layout
// core computes plans against an in-memory Binder snapshot; a store
// applies the resulting writes. Callers attach to a backend and detach
// when done. Implements prd006-collaborators R2.
type BinderStore interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// CreateBinder persists a new binder. When id is empty a new UUID v7
	// is generated. Returns the actual ID used.
	CreateBinder(id string, binder *Binder) (string, error)

	// GetBinder retrieves a binder snapshot, cards included.
	// Returns ErrBinderNotFound if no binder exists with that ID.
	GetBinder(id string) (*Binder, error)

	// GetPageCount returns the binder's current page count.
	GetPageCount(binderID string) (int, error)

	// UpdateSettings applies a partial settings update.
	UpdateSettings(binderID string, patch SettingsPatch) error

	// AddPages grows the binder by n pages. Returns ErrMaxPagesExceeded
	// when the result would pass the binder's MaxPages.
	AddPages(binderID string, n int) error

	// BatchMove applies the moves in the given order inside a single
	// transaction; on any failure nothing is applied. A move whose
	// destination is occupied fails with ErrMoveCollision.
	BatchMove(binderID string, moves []Move) error

	// ClearItems removes every card entry, recording reasonTag for audit,
	// and returns the number of entries removed.
	ClearItems(binderID string, reasonTag string) (int, error)

	// InsertAt writes entries at consecutive positions from startPosition.
	// When replace is false, an occupied target position fails the whole
	// batch with ErrPositionOccupied.
	InsertAt(binderID string, entries []CardEntry, startPosition int, replace bool) error

	// AppendHistory persists a history entry for the binder.
	AppendHistory(binderID string, entry HistoryEntry) error

	// ListHistory returns the binder's history entries oldest first.
	ListHistory(binderID string) ([]HistoryEntry, error)

	// SetHistoryPointer persists the binder's undo/redo position: -1 for
	// the live state, otherwise an index into the history log. Restored
	// into Binder.HistoryPointer by GetBinder.
	SetHistoryPointer(binderID string, pointer int) error

	// ClearHistory discards the binder's history log.
	ClearHistory(binderID string) error
}

// CardProvider supplies the ordered card list of a set. Implementations
// wrap the external card API; the layout core never fetches directly
// (prd006-collaborators R1).
type CardProvider interface {
	Fetch(setID string) ([]Card, error)
}

// CardCache is a read-through cache for fetched set lists. Population is
// fire-and-forget: a miss is never an error and correctness does not
// depend on the cache (prd006-collaborators R3; docs/DECISIONS § injected cache).
type CardCache interface {
	Get(setID string) ([]Card, bool)
	Put(setID string, cards []Card)
}
