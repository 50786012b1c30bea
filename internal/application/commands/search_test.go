package commands

import (
	"testing"

	"curio/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "staticcheck",
			query:     "staticcheck",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "staticcheck linter",
			query:     "staticcheck",
			wantScore: 150,
		},
		{
			name:      "substring match",
			target:    "go staticcheck",
			query:     "staticcheck",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match chars at start",
			target:  "staticcheck",
			query:   "sta",
			wantMin: 100,
		},
		{
			name:      "no match",
			target:    "staticcheck",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "staticcheck",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "STATICCHECK",
			query:   "staticcheck",
			wantMin: 100,
		},
		{
			name:    "hyphenated tag match",
			target:  "code-review",
			query:   "review",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("FuzzyScore(%q, %q) = %d, want >= %d", tt.target, tt.query, score, tt.wantMin)
				}
				return
			}
			if score != tt.wantScore {
				t.Errorf("FuzzyScore(%q, %q) = %d, want %d", tt.target, tt.query, score, tt.wantScore)
			}
		})
	}
}

func TestFuzzySort(t *testing.T) {
	results := []domain.SearchResult{
		{Name: "unrelated", Category: "misc", MatchedText: "nothing here"},
		{Name: "golangci-lint", Category: "quality", MatchedText: "lint runner"},
		{Name: "lint", Category: "quality", MatchedText: "lint"},
	}

	sorted := FuzzySort(results, "lint")

	if len(sorted) != 2 {
		t.Fatalf("expected non-matching result dropped, got %d results", len(sorted))
	}
	if sorted[0].Name != "lint" {
		t.Errorf("best result = %q, want exact prefix match first", sorted[0].Name)
	}
	if sorted[0].Score < sorted[1].Score {
		t.Error("results not sorted by score descending")
	}
}
