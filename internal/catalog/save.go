package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

var header = []string{"title", "box", "cover"}

// Marshal encodes an entry list to CSV bytes. Rows are written sorted
// case-insensitively by title so repeated saves of the same catalog are
// byte-identical.
func Marshal(entries []Entry) ([]byte, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	for _, e := range sorted {
		cover := "0"
		if e.Cover {
			cover = "1"
		}
		if err := w.Write([]string{e.Title, e.Box, cover}); err != nil {
			return nil, fmt.Errorf("encoding catalog: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the entry list to a file on disk, replacing it whole.
func Save(path string, entries []Entry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
