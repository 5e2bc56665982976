package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/boxctl/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOXCTL_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.Search.TopN)
	}
	if cfg.Search.MinScore != 0.52 {
		t.Errorf("MinScore = %v, want 0.52", cfg.Search.MinScore)
	}
	if cfg.Search.RemoveCandidates != 5 {
		t.Errorf("RemoveCandidates = %d, want 5", cfg.Search.RemoveCandidates)
	}
	if cfg.Catalog.Path == "" {
		t.Error("default catalog path is empty")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "catalog:\n  path: /srv/manuals/catalog.csv\nsearch:\n  top_n: 3\n  min_score: 0.7\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOXCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "/srv/manuals/catalog.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Search.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.Search.TopN)
	}
	if cfg.Search.MinScore != 0.7 {
		t.Errorf("MinScore = %v, want 0.7", cfg.Search.MinScore)
	}
	// Unset keys keep their defaults.
	if cfg.Search.RemoveCandidates != 5 {
		t.Errorf("RemoveCandidates = %d, want 5", cfg.Search.RemoveCandidates)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(":: not yaml ["), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOXCTL_CONFIG", path)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for malformed config, got nil")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cases := []struct{ in, want string }{
		{"~/boxes/catalog.csv", filepath.Join(home, "boxes", "catalog.csv")},
		{"/absolute/path.csv", "/absolute/path.csv"},
		{"relative/path.csv", "relative/path.csv"},
	}
	for _, c := range cases {
		if got := config.ExpandHome(c.in); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
