package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/render"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		topN     int
		minScore float64
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Fuzzy-search the catalog by title",
		Long: `Search the catalog for titles similar to the given text.
An exact (case-insensitive) match is shown first if one exists, followed by
a ranked table of fuzzy matches.

Examples:
  boxctl search "nikon 7200"
  boxctl search hp 15c --top 5
  boxctl search "owner manual" --min-score 0.6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topN <= 0 {
				topN = cfg.Search.TopN
			}
			if minScore <= 0 {
				minScore = cfg.Search.MinScore
			}
			runSearch(os.Stdout, strings.Join(args, " "), topN, minScore)
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", 0, "Maximum number of results (default from config)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum match score (default from config)")

	return cmd
}

// runSearch prints the exact match, if any, then the ranked fuzzy table.
// Shared between the cobra command and the interactive loop.
func runSearch(w io.Writer, query string, topN int, minScore float64) {
	if entry, found := engine.Exact(query); found {
		fmt.Fprintln(w, "Exact match:")
		render.Table(w, []render.Row{render.ResultRow(entry, 1.00)}, true)
	}

	results := engine.Fuzzy(query, topN, minScore)
	if len(results) == 0 {
		fmt.Fprintln(w, "No close matches found.")
		return
	}
	rows := make([]render.Row, len(results))
	for i, r := range results {
		rows[i] = render.ResultRow(r.Entry, r.Score)
	}
	fmt.Fprintln(w, "Matches:")
	render.Table(w, rows, true)
}
