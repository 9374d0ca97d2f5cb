// Init command: create a new binder.
// Implements: prd009-binder-cli R2.1.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

var (
	initGridSize string
	initPages    int
	initMaxPages int
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new binder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		grid := layout.Resolve(initGridSize)
		id, err := store.CreateBinder("", &types.Binder{
			Name:  args[0],
			Cards: map[int]types.CardEntry{},
			Settings: types.BinderSettings{
				GridSizeID: grid.ID,
				PageCount:  initPages,
				MaxPages:   initMaxPages,
			},
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]string{"binder_id": id})
		}
		okColor.Printf("Created binder %q\n", args[0])
		fmt.Println("ID:", id)
		fmt.Printf("Grid %s, %d page(s), max %d\n", grid.ID, initPages, initMaxPages)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initGridSize, "grid", layout.DefaultGridSizeID, "grid size (2x2, 3x3, 4x3, 4x4)")
	initCmd.Flags().IntVar(&initPages, "pages", 1, "initial page count")
	initCmd.Flags().IntVar(&initMaxPages, "max-pages", 50, "maximum page count")
}
