// Estimate command: rough pre-fetch variant count for confirmation UIs.
// Implements: prd009-binder-cli R4.3.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/placement"
)

var estimateCopies int

var estimateCmd = &cobra.Command{
	Use:   "estimate <set-size>",
	Short: "Estimate generated variant entries before fetching a set",
	Long: `Estimate prints a rough variant count for a set of the given size,
for sizing a placement before the list is fetched. The committed plan
always counts eligibility from the fetched list; this figure never
feeds it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < 0 {
			return fmt.Errorf("set size must be a non-negative integer: %q", args[0])
		}
		n := placement.EstimateVariantCount(size, estimateCopies)
		if flagJSON {
			return printJSON(map[string]int{"estimated_variants": n, "total_entries": size + n})
		}
		fmt.Printf("Roughly %d variant entries (%d total) for a %d card set\n",
			n, size+n, size)
		return nil
	},
}

func init() {
	estimateCmd.Flags().IntVar(&estimateCopies, "copies", 1, "variant copies per eligible card")
}
