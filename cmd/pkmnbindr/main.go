// Package main provides the pkmnbindr CLI.
// Implements: prd009-binder-cli (R1, R6, R8); prd008-configuration-directories (R1, R2).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/paths"
	"github.com/biroman/pkmnbindr/pkg/pkmnbindr"
	"github.com/biroman/pkmnbindr/pkg/types"
)

// Exit codes per prd009-binder-cli R8.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "pkmnbindr",
	Short:   "pkmnbindr plans and applies card placements in virtual binders",
	Version: pkmnbindr.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.pkmnbindr-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// userErrors are the failures the user can correct with different input;
// everything else (store lifecycle, filesystem, SQL) is a system error.
var userErrors = []error{
	types.ErrBinderNotFound,
	types.ErrEntryNotFound,
	types.ErrInvalidID,
	types.ErrInvalidName,
	types.ErrInvalidPlacement,
	types.ErrInvalidCopies,
	types.ErrPositionOccupied,
	types.ErrCapacityExceeded,
	types.ErrExpansionUnavailable,
	types.ErrMaxPagesExceeded,
	types.ErrMoveCollision,
	types.ErrNotConfirmed,
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	for _, sentinel := range userErrors {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}

// resolveDataDir returns the data directory path following prd008 R2.3
// precedence: --data-dir flag > config.yaml data_dir > env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following prd008
// R1.3 precedence: --config-dir flag > env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
