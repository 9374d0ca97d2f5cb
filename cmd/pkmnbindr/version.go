// Version command for the pkmnbindr CLI.
// Implements: prd009-binder-cli R2.2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/pkg/pkmnbindr"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pkmnbindr version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pkmnbindr", pkmnbindr.Version)
	},
}
