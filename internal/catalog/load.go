package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Load reads a catalog CSV file from disk.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes CSV bytes into an entry list. The first record must be a
// header naming the title, box and cover columns; column order is taken from
// the header. Rows with an empty title are skipped.
func Parse(data []byte) ([]Entry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing catalog CSV: %w", err)
	}
	if len(records) == 0 {
		return []Entry{}, nil
	}

	titleCol, boxCol, coverCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			titleCol = i
		case "box":
			boxCol = i
		case "cover":
			coverCol = i
		}
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("parsing catalog CSV: no %q column in header", "title")
	}

	var entries []Entry
	for _, rec := range records[1:] {
		e := Entry{Title: strings.TrimSpace(field(rec, titleCol))}
		if e.Title == "" {
			continue
		}
		e.Box = strings.TrimSpace(field(rec, boxCol))
		e.Cover = ParseCover(field(rec, coverCol))
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseCover interprets the textual cover-flag encoding. Only the documented
// true spellings count; anything else, including an empty field, is false.
func ParseCover(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
