package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/render"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [box <label> | cover]",
		Short: "List catalog entries grouped by box",
		Long: `List every entry grouped by its display label (box, COVER or UNKNOWN),
one aligned table per group.

'list box <label>' restricts the output to one box; a bare number is
shorthand for a BOX label. 'list cover' shows every entry with a cover,
regardless of box.

Examples:
  boxctl list
  boxctl list box 2
  boxctl list box "BOX 1"
  boxctl list cover`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(os.Stdout, strings.Join(args, " "))
		},
	}
}

// runList handles list, list box <label> and list cover. Shared between the
// cobra command and the interactive loop.
func runList(w io.Writer, arg string) error {
	fields := strings.Fields(arg)
	switch {
	case len(fields) == 0:
		groups := engine.GroupByLabel("")
		if len(groups) == 0 {
			fmt.Fprintln(w, "Catalog is empty.")
			return nil
		}
		labels := make([]string, 0, len(groups))
		for label := range groups {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(w, "\n%s\n", label)
			render.Table(w, entryRows(groups[label]), false)
		}

	case strings.EqualFold(fields[0], "cover") && len(fields) == 1:
		entries := engine.Covered()
		if len(entries) == 0 {
			fmt.Fprintln(w, "No items with cover flag.")
			return nil
		}
		render.Table(w, entryRows(entries), false)

	case strings.EqualFold(fields[0], "box"):
		label := strings.Join(fields[1:], " ")
		if label == "" {
			return fmt.Errorf("usage: list box <label>")
		}
		// "list box 1" is shorthand for "list box BOX 1".
		if _, err := strconv.Atoi(label); err == nil {
			label = "BOX " + label
		}
		groups := engine.GroupByLabel(label)
		if len(groups) == 0 {
			fmt.Fprintf(w, "No items in %s.\n", strings.ToUpper(label))
			return nil
		}
		for _, entries := range groups {
			render.Table(w, entryRows(entries), false)
		}

	default:
		return fmt.Errorf("usage: list [box <label> | cover]")
	}
	return nil
}
