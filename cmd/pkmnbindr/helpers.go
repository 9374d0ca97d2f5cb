// Shared helpers for the pkmnbindr CLI: store setup, card list loading,
// and output formatting.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/biroman/pkmnbindr/pkg/sqlite"
	"github.com/biroman/pkmnbindr/pkg/types"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// openStore attaches a SQLite store over the resolved data directory.
// Callers must Detach when done.
func openStore() (types.BinderStore, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	store := sqlite.NewStore()
	if err := store.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// fileProvider loads a fetched set list from a JSON file. It stands in
// for the card API client, which lives outside this module.
type fileProvider struct {
	path string
}

func (p fileProvider) Fetch(setID string) ([]types.Card, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read card list: %w", err)
	}
	var cards []types.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse card list: %w", err)
	}
	return cards, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
