package domain

import (
	"math"
	"reflect"
	"testing"
)

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name       string
		tools      int
		keywords   int
		categories int
		want       float64
	}{
		{"five tools three keywords two categories", 5, 3, 2, 0.8},
		{"three tools", 3, 0, 0, 0.3},
		{"two tools", 2, 0, 0, 0.15},
		{"two keywords", 2, 2, 0, 0.25},
		{"one category", 2, 0, 1, 0.25},
		{"maximum stays clamped", 100, 100, 100, 0.8},
		{"zero everything", 0, 0, 0, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceScore(tt.tools, tt.keywords, tt.categories)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConfidenceScore(%d, %d, %d) = %v, want %v",
					tt.tools, tt.keywords, tt.categories, got, tt.want)
			}
		})
	}
}

func TestConfidenceScoreMonotone(t *testing.T) {
	// Holding the other inputs fixed, increasing any input never lowers the
	// score, and the score always stays in [0, 1].
	for tools := 0; tools <= 7; tools++ {
		for keywords := 0; keywords <= 5; keywords++ {
			for categories := 0; categories <= 4; categories++ {
				score := ConfidenceScore(tools, keywords, categories)
				if score < 0 || score > 1 {
					t.Fatalf("score out of range: %v", score)
				}
				if ConfidenceScore(tools+1, keywords, categories) < score ||
					ConfidenceScore(tools, keywords+1, categories) < score ||
					ConfidenceScore(tools, keywords, categories+1) < score {
					t.Fatalf("score not monotone at (%d, %d, %d)", tools, keywords, categories)
				}
			}
		}
	}
}

func TestDiscoverThemes(t *testing.T) {
	tools := []ToolRecord{
		{Name: "linty", Category: "quality", Tags: []string{"linting", "static-analysis"}},
		{Name: "checkmate", Category: "quality", Tags: []string{"linting", "ci"}},
		{Name: "pipeliner", Category: "automation", Tags: []string{"ci", "pipelines"}},
		{Name: "solo", Category: "misc", Tags: []string{"one-of-a-kind"}},
	}

	candidates := DiscoverThemes(tools)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}

	c := candidates[0]
	wantTools := []string{"checkmate", "linty", "pipeliner"}
	if !reflect.DeepEqual(c.Tools, wantTools) {
		t.Errorf("tools = %v, want %v", c.Tools, wantTools)
	}
	// "linting" and "ci" are each shared by two tools; "static-analysis",
	// "pipelines" and "one-of-a-kind" are singletons and never cluster.
	wantKeywords := []string{"ci", "linting"}
	if !reflect.DeepEqual(c.Keywords, wantKeywords) {
		t.Errorf("keywords = %v, want %v", c.Keywords, wantKeywords)
	}
	wantCategories := []string{"automation", "quality"}
	if !reflect.DeepEqual(c.Categories, wantCategories) {
		t.Errorf("categories = %v, want %v", c.Categories, wantCategories)
	}
	// 3 tools (0.3) + 2 keywords (0.1) + 2 categories (0.2)
	if math.Abs(c.Confidence-0.6) > 1e-9 {
		t.Errorf("confidence = %v, want 0.6", c.Confidence)
	}
}

func TestDiscoverThemesSeparateComponents(t *testing.T) {
	tools := []ToolRecord{
		{Name: "a1", Category: "x", Tags: []string{"alpha"}},
		{Name: "a2", Category: "x", Tags: []string{"alpha"}},
		{Name: "b1", Category: "y", Tags: []string{"beta"}},
		{Name: "b2", Category: "y", Tags: []string{"beta"}},
	}

	candidates := DiscoverThemes(tools)

	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	names := []string{candidates[0].Name, candidates[1].Name}
	want := []string{"Alpha", "Beta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("candidate names = %v, want %v", names, want)
	}
}

func TestDiscoverThemesEmptyAndUntagged(t *testing.T) {
	if got := DiscoverThemes(nil); len(got) != 0 {
		t.Errorf("expected no candidates for empty input, got %d", len(got))
	}

	untagged := []ToolRecord{{Name: "bare"}, {Name: "bones"}}
	if got := DiscoverThemes(untagged); len(got) != 0 {
		t.Errorf("expected no candidates for untagged tools, got %d", len(got))
	}
}

func TestDiscoverThemesDeterministicOrder(t *testing.T) {
	tools := []ToolRecord{
		{Name: "t1", Category: "a", Tags: []string{"big", "huge"}},
		{Name: "t2", Category: "b", Tags: []string{"big", "huge"}},
		{Name: "t3", Category: "c", Tags: []string{"big"}},
		{Name: "t4", Category: "a", Tags: []string{"small"}},
		{Name: "t5", Category: "a", Tags: []string{"small"}},
	}

	first := DiscoverThemes(tools)

	// Reversed input must produce the same ordered output
	reversed := make([]ToolRecord, len(tools))
	for i, tr := range tools {
		reversed[len(tools)-1-i] = tr
	}
	second := DiscoverThemes(reversed)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("discovery not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
	if len(first) != 2 || first[0].Confidence < first[1].Confidence {
		t.Errorf("candidates not sorted by confidence: %+v", first)
	}
}
