package search_test

import (
	"testing"

	"github.com/blackwell-systems/boxctl/internal/search"
)

func TestScore_Bounds(t *testing.T) {
	queries := []string{"", "hp", "nikon 7200", "owner manual", "!!!", "zzqq"}
	candidates := []string{
		"",
		"HP 67",
		"Nikon D7200",
		"HP 19C HP 29C Owner Manual",
		"Baby Lock BLSA3 Embroidery Design Guide",
	}
	for _, q := range queries {
		for _, c := range candidates {
			s := search.Score(q, c)
			if s < 0 || s > 1 {
				t.Errorf("Score(%q, %q) = %v, out of [0,1]", q, c, s)
			}
		}
	}
}

func TestScore_SubstringIsPerfect(t *testing.T) {
	cases := []struct{ q, c string }{
		{"hook 2", "Lowrance Hook 2 series"},
		{"hp 19c", "HP-19C / HP-29C Owner Manual"},
		{"Nikon D7200", "nikon d7200"},
	}
	for _, tc := range cases {
		if got := search.Score(tc.q, tc.c); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", tc.q, tc.c, got)
		}
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	if got := search.Score("", "HP 67"); got != 0 {
		t.Errorf("Score(\"\", _) = %v, want 0", got)
	}
	if got := search.Score("---", "HP 67"); got != 0 {
		t.Errorf("Score(\"---\", _) = %v, want 0", got)
	}
}

// The windowed edit similarity has to carry this match: the query drops the
// "d" so neither the substring nor full token overlap fires.
func TestScore_NikonScenario(t *testing.T) {
	got := search.Score("nikon 7200", "Nikon D7200")
	if got < 0.52 {
		t.Errorf("Score = %v, want >= 0.52", got)
	}
	if got < 0.9 || got >= 1.0 {
		t.Errorf("Score = %v, expected a high partial-window ratio below 1.0", got)
	}
}

// Reordered query tokens are carried by the token-overlap signal at its
// 0.85 scale.
func TestScore_ReorderedTokens(t *testing.T) {
	got := search.Score("29c owner 19c", "HP 19C HP 29C Owner Manual")
	if got < 0.85 {
		t.Errorf("Score = %v, want >= 0.85", got)
	}
}

func TestScore_Unrelated(t *testing.T) {
	got := search.Score("zzqq", "Nikon D7200")
	if got >= 0.52 {
		t.Errorf("Score = %v for unrelated strings, want < 0.52", got)
	}
}
