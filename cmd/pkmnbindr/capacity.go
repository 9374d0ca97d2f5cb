// Capacity command: report slot usage and expansion options.
// Implements: prd009-binder-cli R3; prd002-capacity-planner.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/capacity"
)

var (
	capacityNeeded    int
	capacityWillClear bool
)

var capacityCmd = &cobra.Command{
	Use:   "capacity <binder-id>",
	Short: "Show binder capacity and, with --needed, expansion options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		binder, err := store.GetBinder(args[0])
		if err != nil {
			return err
		}

		info := capacity.ComputeCapacity(binder, capacityWillClear)
		if flagJSON {
			out := map[string]any{"capacity": info}
			if capacityNeeded > 0 {
				out["options"] = capacity.ComputeExpansionOptions(binder, capacityNeeded, capacityWillClear)
			}
			return printJSON(out)
		}

		fmt.Printf("Grid %s, %d page(s): %d slots total, %d used, %d available\n",
			info.GridConfig.ID, info.CurrentPages, info.TotalSlots, info.UsedSlots, info.AvailableSlots)

		if capacityNeeded == 0 {
			return nil
		}
		options := capacity.ComputeExpansionOptions(binder, capacityNeeded, capacityWillClear)
		if len(options) == 0 {
			if err := capacity.EnsureFits(binder, capacityNeeded, capacityWillClear); err == nil {
				okColor.Printf("%d slot(s) fit without expansion\n", capacityNeeded)
			} else {
				warnColor.Println("No expansion option can fit this placement")
			}
			return nil
		}
		warnColor.Printf("%d slot(s) need expansion; options:\n", capacityNeeded)
		for i, opt := range options {
			fmt.Printf("  %d. %s\n", i+1, opt.Label)
		}
		return nil
	},
}

func init() {
	capacityCmd.Flags().IntVar(&capacityNeeded, "needed", 0, "slots a planned insertion requires")
	capacityCmd.Flags().BoolVar(&capacityWillClear, "will-clear", false, "treat the binder as if it will be cleared first")
}
