// Pages and grid commands: apply expansion to a binder.
// Implements: prd009-binder-cli R5; prd002-capacity-planner R3.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

var pagesAddCount int

var pagesCmd = &cobra.Command{
	Use:   "pages add <binder-id>",
	Short: "Add pages to a binder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "add" {
			return fmt.Errorf("unknown pages subcommand %q", args[0])
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.AddPages(args[1], pagesAddCount); err != nil {
			return err
		}
		count, err := store.GetPageCount(args[1])
		if err != nil {
			return err
		}
		okColor.Printf("Binder now has %d page(s)\n", count)
		return nil
	},
}

var gridCmd = &cobra.Command{
	Use:   "grid set <binder-id> <grid-size>",
	Short: "Resize a binder's grid",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "set" {
			return fmt.Errorf("unknown grid subcommand %q", args[0])
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		grid := layout.Resolve(args[2])
		if err := store.UpdateSettings(args[1], types.SettingsPatch{GridSizeID: &grid.ID}); err != nil {
			return err
		}
		okColor.Printf("Grid set to %s (%d slots per page)\n", grid.ID, grid.TotalSlots)
		return nil
	},
}

func init() {
	pagesCmd.Flags().IntVar(&pagesAddCount, "count", 1, "pages to add")
}
