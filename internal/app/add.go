package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/catalog"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		box   string
		cover bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to the catalog",
		Long: `Add an item to the catalog and persist it.

A title that already exists case-insensitively does not create a duplicate:
the existing entry keeps its box and gains the cover flag if set here.

Examples:
  boxctl add "HP 15C Owner's Handbook" --box "BOX 2"
  boxctl add "Canon EOS R6 Mark II" --cover`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			return runAdd(os.Stdout, catalog.Entry{Title: title, Box: box, Cover: cover})
		},
	}

	cmd.Flags().StringVar(&box, "box", "", "Storage box label")
	cmd.Flags().BoolVar(&cover, "cover", false, "Item has a cover")

	return cmd
}

func runAdd(w io.Writer, e catalog.Entry) error {
	if e.Title == "" {
		return fmt.Errorf("usage: add <title>")
	}
	merged, err := store.Insert(e)
	if err != nil {
		return err
	}
	if merged {
		canonical, _ := store.Get(e.Title)
		ok(w, "Updated %q", canonical.Title)
	} else {
		ok(w, "Added %q", e.Title)
	}
	return nil
}
