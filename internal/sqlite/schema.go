package sqlite

// Schema DDL for all tables (prd007-sqlite-store R2). The database file
// persists between sessions, so every statement is IF NOT EXISTS.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS binders (
    binder_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    grid_size_id TEXT NOT NULL,
    page_count INTEGER NOT NULL,
    max_pages INTEGER NOT NULL,
    history_pointer INTEGER NOT NULL DEFAULT -1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS binder_cards (
    binder_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    card_key TEXT NOT NULL,
    card_id TEXT NOT NULL,
    name TEXT NOT NULL,
    rarity TEXT NOT NULL,
    set_id TEXT NOT NULL,
    is_variant INTEGER NOT NULL DEFAULT 0,
    original_id TEXT,
    inserted_at TEXT NOT NULL,
    PRIMARY KEY (binder_id, position),
    UNIQUE (binder_id, card_key),
    FOREIGN KEY (binder_id) REFERENCES binders(binder_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS history (
    entry_id TEXT PRIMARY KEY,
    binder_id TEXT NOT NULL,
    action_kind TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    from_position INTEGER NOT NULL DEFAULT 0,
    to_position INTEGER NOT NULL DEFAULT 0,
    target_position INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    FOREIGN KEY (binder_id) REFERENCES binders(binder_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS clear_log (
    clear_id TEXT PRIMARY KEY,
    binder_id TEXT NOT NULL,
    reason_tag TEXT NOT NULL,
    cleared_count INTEGER NOT NULL,
    cleared_at TEXT NOT NULL
);
`
