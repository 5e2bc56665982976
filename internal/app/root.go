package app

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/boxctl/internal/catalog"
	"github.com/blackwell-systems/boxctl/internal/config"
	"github.com/blackwell-systems/boxctl/internal/render"
	"github.com/blackwell-systems/boxctl/internal/search"
	"github.com/blackwell-systems/boxctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	store  *catalog.Store
	engine *search.Engine

	flagNoColor bool
	flagCatalog string
)

var rootCmd = &cobra.Command{
	Use:   "boxctl",
	Short: "Look up items in a personal box inventory",
	Long: `boxctl keeps a catalog of item titles, each with an optional storage
box and a "has cover" flag, backed by a flat CSV file. Items are found by
exact or fuzzy title search.

Run 'boxctl' with no arguments to start the interactive prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(os.Stdin, os.Stdout)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog CSV path (default from config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		// version needs no catalog; don't create one as a side effect.
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := cfg.Catalog.Path
		if flagCatalog != "" {
			path = config.ExpandHome(flagCatalog)
		}
		store, err = catalog.Open(path)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		engine = search.NewEngine(store)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newSearchCmd(),
		newExactCmd(),
		newListCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func entryRows(entries []catalog.Entry) []render.Row {
	rows := make([]render.Row, len(entries))
	for i, e := range entries {
		rows[i] = render.Row{Entry: e}
	}
	return rows
}
