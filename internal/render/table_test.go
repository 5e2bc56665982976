package render_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/blackwell-systems/boxctl/internal/catalog"
	"github.com/blackwell-systems/boxctl/internal/render"
)

func TestTruncate(t *testing.T) {
	if got := render.Truncate("short", 64); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}

	long := strings.Repeat("x", 70)
	got := render.Truncate(long, 64)
	if len(got) != 64 {
		t.Errorf("truncated length = %d, want 64", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated value %q lacks ... marker", got)
	}

	// Narrow columns get a plain cut, no marker.
	if got := render.Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate(abcdef, 3) = %q, want abc", got)
	}
}

func TestTable_WithScore(t *testing.T) {
	var buf bytes.Buffer
	rows := []render.Row{
		render.ResultRow(catalog.Entry{Title: "Free42", Box: "BOX 3"}, 0.75),
		render.ResultRow(catalog.Entry{Title: "HP 75 Owner Manual", Box: "BOX 1", Cover: true}, 1.00),
	}
	render.Table(&buf, rows, true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + rule + 2 rows", len(lines))
	}

	wantHeader := fmt.Sprintf("%-64s  %-8s  %-5s  %6s", "Title", "Box", "Cover", "Score")
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if lines[1] != strings.Repeat("-", 64+2+8+2+5+2+6) {
		t.Errorf("rule = %q", lines[1])
	}
	wantRow := fmt.Sprintf("%-64s  %-8s  %-5s  %6.2f", "Free42", "BOX 3", "No", 0.75)
	if lines[2] != wantRow {
		t.Errorf("row = %q, want %q", lines[2], wantRow)
	}
	if !strings.Contains(lines[3], "Yes") || !strings.Contains(lines[3], "1.00") {
		t.Errorf("cover row = %q", lines[3])
	}
}

func TestTable_WithoutScore(t *testing.T) {
	var buf bytes.Buffer
	render.Table(&buf, []render.Row{
		{Entry: catalog.Entry{Title: "Humminbird Helix 5"}},
	}, false)

	out := buf.String()
	if strings.Contains(out, "Score") {
		t.Error("score column rendered in scoreless table")
	}
	if !strings.Contains(out, "UNKNOWN") {
		t.Error("box-less, cover-less entry not labeled UNKNOWN")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[1] != strings.Repeat("-", 64+2+8+2+5) {
		t.Errorf("rule = %q", lines[1])
	}
}

func TestTable_TruncatesColumns(t *testing.T) {
	var buf bytes.Buffer
	longTitle := strings.Repeat("t", 80)
	render.Table(&buf, []render.Row{
		{Entry: catalog.Entry{Title: longTitle, Box: "SHELF UPSTAIRS"}},
	}, false)

	out := buf.String()
	if strings.Contains(out, longTitle) {
		t.Error("80-char title not truncated to the column width")
	}
	if !strings.Contains(out, strings.Repeat("t", 61)+"...") {
		t.Error("truncated title lacks ... marker")
	}
	if !strings.Contains(out, "SHELF...") {
		t.Errorf("long box label not truncated: %q", out)
	}
}
