package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store owns the in-memory catalog and its backing file. Titles are unique
// case-insensitively; the lowercase index is maintained by the store's own
// mutation methods and is never rebuilt from outside. Every structural
// mutation rewrites the backing file before returning.
type Store struct {
	path    string
	entries map[string]Entry  // canonical title -> entry
	index   map[string]string // lowercase title -> canonical title
}

// Open loads the catalog at path. A missing file is not an error: an empty
// store file (header only) is created and an empty store returned.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]Entry),
		index:   make(map[string]string),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating catalog: %w", err)
		}
		if err := Save(path, nil); err != nil {
			return nil, fmt.Errorf("creating catalog: %w", err)
		}
		return s, nil
	}

	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	// Duplicate rows merge through the same path as live inserts.
	for _, e := range entries {
		s.put(e)
	}
	return s, nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns every entry in unspecified order.
func (s *Store) All() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// Get looks up an entry by exact title, ignoring case and surrounding
// whitespace. The returned entry carries the canonical stored title.
func (s *Store) Get(query string) (Entry, bool) {
	canonical, ok := s.index[strings.ToLower(strings.TrimSpace(query))]
	if !ok {
		return Entry{}, false
	}
	return s.entries[canonical], true
}

// Insert adds e to the catalog and persists. If a title already exists
// case-insensitively the existing entry is updated in place: the cover flag
// is ORed in and the box is kept unless it was empty. Returns whether the
// insert merged into an existing entry.
func (s *Store) Insert(e Entry) (bool, error) {
	merged := s.put(e)
	if err := s.save(); err != nil {
		return merged, err
	}
	return merged, nil
}

// Remove deletes the entry with exactly the given canonical title and
// persists. Returns false without touching the file when no such title
// exists.
func (s *Store) Remove(title string) (bool, error) {
	if _, ok := s.entries[title]; !ok {
		return false, nil
	}
	delete(s.entries, title)
	delete(s.index, strings.ToLower(title))
	if err := s.save(); err != nil {
		return true, err
	}
	return true, nil
}

// put applies insert semantics in memory only.
func (s *Store) put(e Entry) bool {
	key := strings.ToLower(e.Title)
	if canonical, ok := s.index[key]; ok {
		existing := s.entries[canonical]
		existing.Cover = existing.Cover || e.Cover
		if existing.Box == "" {
			existing.Box = e.Box
		}
		s.entries[canonical] = existing
		return true
	}
	s.entries[e.Title] = e
	s.index[key] = e.Title
	return false
}

func (s *Store) save() error {
	return Save(s.path, s.All())
}
