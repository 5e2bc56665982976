package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/catalog"
	"github.com/blackwell-systems/boxctl/internal/search"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "remove <text>",
		Short: "Remove an item from the catalog",
		Long: `Remove an item and persist the catalog.

An exact (case-insensitive) title match is removed after confirmation.
Without an exact match, the closest fuzzy candidates are offered as a
numbered list to pick from.

Examples:
  boxctl remove "HP 67"
  boxctl remove free42 --yes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := &removeFlow{
				store:       store,
				engine:      engine,
				pr:          newPrompter(os.Stdin, os.Stdout),
				candidates:  cfg.Search.RemoveCandidates,
				minScore:    cfg.Search.MinScore,
				skipConfirm: skipConfirm,
			}
			_, _, err := flow.Run(strings.Join(args, " "))
			return err
		},
	}

	cmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip confirmation prompt")

	return cmd
}

type removeOutcome int

const (
	removeDeleted removeOutcome = iota
	removeCancelled
	removeNotFound
	removeInvalid
)

// removeFlow drives interactive removal as an explicit two-step protocol:
// select a candidate, then confirm. Prompts go through the prompter so the
// whole flow runs under test without a terminal. Nothing is mutated until
// both steps succeed.
type removeFlow struct {
	store       *catalog.Store
	engine      *search.Engine
	pr          *prompter
	candidates  int
	minScore    float64
	skipConfirm bool
}

// Run resolves query to a canonical title, asks for confirmation, then
// deletes and persists. The returned title is set only when an entry was
// deleted.
func (f *removeFlow) Run(query string) (removeOutcome, string, error) {
	w := f.pr.out

	// Selecting: an exact match wins outright, otherwise offer the closest
	// fuzzy candidates for numbered selection.
	var title string
	if entry, found := f.engine.Exact(query); found {
		title = entry.Title
	} else {
		results := f.engine.Fuzzy(query, f.candidates, f.minScore)
		if len(results) == 0 {
			fmt.Fprintln(w, "No close matches found.")
			return removeNotFound, "", nil
		}
		fmt.Fprintln(w, "No exact match. Candidates:")
		for i, r := range results {
			fmt.Fprintf(w, "  %d) %s  [%s]\n", i+1, r.Entry.Title, r.Entry.DisplayLabel())
		}
		line, err := f.pr.ReadLine("Number to remove (empty to cancel): ")
		if err != nil {
			return removeCancelled, "", nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(w, "Cancelled.")
			return removeCancelled, "", nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(results) {
			fmt.Fprintln(w, "Invalid selection.")
			return removeInvalid, "", nil
		}
		title = results[n-1].Entry.Title
	}

	// Confirming.
	if !f.skipConfirm {
		yes, err := f.pr.Confirm(fmt.Sprintf("Remove %q? (y/N): ", title))
		if err != nil || !yes {
			fmt.Fprintln(w, "Cancelled.")
			return removeCancelled, "", nil
		}
	}

	removed, err := f.store.Remove(title)
	if err != nil {
		return removeDeleted, title, err
	}
	if !removed {
		fmt.Fprintln(w, "No exact (case-insensitive) match.")
		return removeNotFound, "", nil
	}
	ok(w, "Removed %q", title)
	return removeDeleted, title, nil
}
