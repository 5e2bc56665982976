package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/render"
	"github.com/spf13/cobra"
)

func newExactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exact <title>",
		Short: "Look up a title exactly (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runExact(os.Stdout, strings.Join(args, " "))
			return nil
		},
	}
}

func runExact(w io.Writer, query string) {
	entry, found := engine.Exact(query)
	if !found {
		fmt.Fprintln(w, "No exact (case-insensitive) match.")
		return
	}
	render.Table(w, []render.Row{render.ResultRow(entry, 1.00)}, true)
}
