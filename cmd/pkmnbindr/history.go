// History commands: list the action log and navigate undo/redo.
// Implements: prd009-binder-cli R7; prd005-history-navigator.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biroman/pkmnbindr/internal/history"
	"github.com/biroman/pkmnbindr/internal/layout"
	"github.com/biroman/pkmnbindr/pkg/types"
)

var historyYes bool

var historyCmd = &cobra.Command{
	Use:   "history <list|undo|redo|clear> <binder-id>",
	Short: "Inspect or navigate a binder's action history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		binderID := args[1]
		binder, err := store.GetBinder(binderID)
		if err != nil {
			return err
		}

		nav := history.New(layout.Resolve(binder.Settings.GridSizeID))
		persisted, err := store.ListHistory(binderID)
		if err != nil {
			return err
		}
		// Each invocation is a fresh process; the persisted pointer is
		// what lets undo/undo/redo chain across invocations.
		nav.Load(persisted, binder.HistoryPointer)

		switch args[0] {
		case "list":
			return listHistory(persisted)
		case "undo":
			target, ok := nav.NavigateBack()
			if !ok {
				warnColor.Println("Nothing to undo")
				return nil
			}
			if err := store.SetHistoryPointer(binderID, nav.Current()); err != nil {
				return err
			}
			reportJump(target)
			return nil
		case "redo":
			target, ok := nav.NavigateForward()
			if !ok {
				warnColor.Println("Nothing to redo")
				return nil
			}
			if err := store.SetHistoryPointer(binderID, nav.Current()); err != nil {
				return err
			}
			reportJump(target)
			return nil
		case "clear":
			if !historyYes && !confirmClear(binderID) {
				return types.ErrNotConfirmed
			}
			if err := nav.Clear(true); err != nil {
				return err
			}
			if err := store.ClearHistory(binderID); err != nil {
				return err
			}
			okColor.Println("History cleared")
			return nil
		default:
			return fmt.Errorf("unknown history subcommand %q", args[0])
		}
	},
}

func listHistory(entries []types.HistoryEntry) error {
	if flagJSON {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("No history")
		return nil
	}
	for i, e := range entries {
		pos, _ := e.RelevantPosition()
		fmt.Printf("%3d  %-8s  position %-4d  %s  %s\n",
			i, e.ActionKind, pos, e.CreatedAt.Format("2006-01-02 15:04:05"), e.ID)
	}
	return nil
}

// reportJump tells the user which binder page the navigation lands on.
// The navigator only reports; reverting binder content is the caller's
// concern and is out of scope for the CLI.
func reportJump(target history.JumpTarget) {
	fmt.Printf("Viewing state after %s at page %d, slot %d (entry %s)\n",
		target.Entry.ActionKind, target.Page, target.Slot, target.Entry.ID)
}

// confirmClear prompts for an explicit yes before discarding history.
func confirmClear(binderID string) bool {
	fmt.Printf("Discard the entire history of binder %s? This cannot be undone. [y/N] ", binderID)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	historyCmd.Flags().BoolVar(&historyYes, "yes", false, "skip the clear confirmation prompt")
}
