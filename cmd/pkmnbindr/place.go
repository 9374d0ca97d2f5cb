// Place command: plan and apply a full-set placement.
// Implements: prd009-binder-cli R4; prd003-set-placement.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/cache"
	"github.com/biroman/pkmnbindr/internal/history"
	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/internal/placement"
	"github.com/biroman/pkmnbindr/pkg/types"
)

var (
	placeCardsFile string
	placeVariants  bool
	placeCopies    int
	placeOrder     string
	placePlacement string
	placeBuffer    int
	placeDryRun    bool
)

var placeCmd = &cobra.Command{
	Use:   "place <binder-id> <set-id>",
	Short: "Place a full set into a binder",
	Long: `Place plans a full-set insertion (variant generation, ordering,
positioning, capacity check) and applies it transactionally. With
--dry-run the plan is printed and nothing is written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		binderID, setID := args[0], args[1]

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		engine := &placement.Engine{
			Provider: fileProvider{path: placeCardsFile},
			Cache:    cache.New(cache.DefaultCapacity),
			Store:    store,
		}

		cfg := types.PlacementConfig{
			IncludeVariants: placeVariants,
			VariantCopies:   placeCopies,
			VariantOrder:    placeOrder,
			Placement:       placePlacement,
			BufferPages:     placeBuffer,
		}

		plan, err := engine.PlanSet(binderID, setID, cfg)
		if err != nil {
			return err
		}

		if flagJSON && placeDryRun {
			return printJSON(plan)
		}
		fmt.Printf("Plan: %d entries, start position %d, %d shift move(s)\n",
			len(plan.Entries), plan.StartPosition, len(plan.ShiftMoves))
		if placeDryRun {
			warnColor.Println("Dry run; nothing written")
			return nil
		}

		binder, err := store.GetBinder(binderID)
		if err != nil {
			return err
		}
		nav := history.New(layout.Resolve(binder.Settings.GridSizeID))
		persisted, err := store.ListHistory(binderID)
		if err != nil {
			return err
		}
		nav.Load(persisted, binder.HistoryPointer)

		entry, err := engine.Commit(plan, nav)
		if err != nil {
			return err
		}
		okColor.Printf("Placed %d entries starting at position %d (history %s)\n",
			len(plan.Entries), plan.StartPosition, entry.ID)
		return nil
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeCardsFile, "cards", "", "JSON file with the fetched set list (required)")
	placeCmd.Flags().BoolVar(&placeVariants, "variants", false, "generate reverse-holo variants for eligible cards")
	placeCmd.Flags().IntVar(&placeCopies, "copies", 1, "variant copies per eligible card")
	placeCmd.Flags().StringVar(&placeOrder, "order", types.VariantOrderInterleaved, "variant order: interleaved, first, last")
	placeCmd.Flags().StringVar(&placePlacement, "placement", types.PlacementEnd, "placement: replace, start, end")
	placeCmd.Flags().IntVar(&placeBuffer, "buffer", 0, "buffer pages between the block and existing content")
	placeCmd.Flags().BoolVar(&placeDryRun, "dry-run", false, "print the plan without writing")
	placeCmd.MarkFlagRequired("cards")
}
