package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/catalog"
)

// runREPL reads commands from in until quit/exit or end of input. Any line
// that is not a recognized command is treated as a search query.
func runREPL(in io.Reader, out io.Writer) error {
	pr := newPrompter(in, out)

	header(out, "boxctl — box inventory lookup (fuzzy search, BOX + COVER aware)")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  search <text>       fuzzy/partial search (aligned table)")
	fmt.Fprintln(out, "  exact <title>       exact match (case-insensitive)")
	fmt.Fprintln(out, "  list                all items grouped by box/COVER/UNKNOWN")
	fmt.Fprintln(out, "  list box <label>    one box")
	fmt.Fprintln(out, "  list cover          items that have a cover")
	fmt.Fprintln(out, "  add <title>         add or update an item")
	fmt.Fprintln(out, "  remove <text>       remove an item")
	fmt.Fprintln(out, "  quit                exit")

	for {
		raw, err := pr.ReadLine("\n> ")
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return nil
			}
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if low := strings.ToLower(raw); low == "quit" || low == "exit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		verb, arg, _ := strings.Cut(raw, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(verb) {
		case "list":
			if err := runList(out, arg); err != nil {
				fmt.Fprintln(out, err)
			}
		case "exact":
			if arg == "" {
				fmt.Fprintln(out, "Usage: exact <title>")
				continue
			}
			runExact(out, arg)
		case "search":
			if arg == "" {
				fmt.Fprintln(out, "Usage: search <text>")
				continue
			}
			runSearch(out, arg, cfg.Search.TopN, cfg.Search.MinScore)
		case "add":
			if arg == "" {
				fmt.Fprintln(out, "Usage: add <title>")
				continue
			}
			if err := replAdd(pr, arg); err != nil {
				return err
			}
		case "remove":
			if arg == "" {
				fmt.Fprintln(out, "Usage: remove <text>")
				continue
			}
			flow := &removeFlow{
				store:      store,
				engine:     engine,
				pr:         pr,
				candidates: cfg.Search.RemoveCandidates,
				minScore:   cfg.Search.MinScore,
			}
			if _, _, err := flow.Run(arg); err != nil {
				return err
			}
		default:
			// Fallback: treat the whole line as a search.
			runSearch(out, raw, cfg.Search.TopN, cfg.Search.MinScore)
		}
	}
}

// replAdd collects box and cover interactively, then inserts.
func replAdd(pr *prompter, title string) error {
	box, err := pr.ReadLine("Box label (empty for none): ")
	if err != nil {
		return nil
	}
	cover, err := pr.Confirm("Has cover? (y/N): ")
	if err != nil {
		return nil
	}
	return runAdd(pr.out, catalog.Entry{
		Title: title,
		Box:   strings.TrimSpace(box),
		Cover: cover,
	})
}
