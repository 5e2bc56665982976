// Package render prints catalog entries as fixed-width aligned tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/boxctl/internal/catalog"
	"github.com/mattn/go-runewidth"
)

// Column widths.
const (
	colTitle = 64
	colBox   = 8
	colCover = 5
	colScore = 6
)

// Row is one table line. Score is rendered only in tables written with
// showScore set.
type Row struct {
	Entry catalog.Entry
	Score float64
}

// ResultRow builds a row carrying a fuzzy-match score.
func ResultRow(e catalog.Entry, score float64) Row {
	return Row{Entry: e, Score: score}
}

// Table writes a header, a dash rule and the rows to w.
func Table(w io.Writer, rows []Row, showScore bool) {
	writeHeader(w, showScore)
	for _, r := range rows {
		fmt.Fprintln(w, formatRow(r, showScore))
	}
}

// Truncate cuts s to width display cells. When something was dropped and the
// column is wide enough, "..." marks the cut.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func formatRow(r Row, showScore bool) string {
	title := runewidth.FillRight(Truncate(r.Entry.Title, colTitle), colTitle)
	box := runewidth.FillRight(Truncate(r.Entry.DisplayLabel(), colBox), colBox)
	cover := runewidth.FillRight("No", colCover)
	if r.Entry.Cover {
		cover = runewidth.FillRight("Yes", colCover)
	}
	if !showScore {
		return fmt.Sprintf("%s  %s  %s", title, box, cover)
	}
	return fmt.Sprintf("%s  %s  %s  %*.2f", title, box, cover, colScore, r.Score)
}

func writeHeader(w io.Writer, showScore bool) {
	line := fmt.Sprintf("%s  %s  %s",
		runewidth.FillRight("Title", colTitle),
		runewidth.FillRight("Box", colBox),
		runewidth.FillRight("Cover", colCover),
	)
	width := colTitle + 2 + colBox + 2 + colCover
	if showScore {
		line += fmt.Sprintf("  %*s", colScore, "Score")
		width += 2 + colScore
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, strings.Repeat("-", width))
}
