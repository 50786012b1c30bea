package domain

import (
	"regexp"
	"strings"
)

// TagValidationResult is the outcome of validating a single raw tag
type TagValidationResult struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized"`
	Suggestion string `json:"suggestion,omitempty"`
}

// maxSuggestionDistance is the edit-distance cutoff below which a vocabulary
// entry is offered as a suggestion for an unknown tag.
const maxSuggestionDistance = 2

var (
	separatorRuns = regexp.MustCompile(`[\s_]+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns    = regexp.MustCompile(`-{2,}`)
)

// NormalizeTag canonicalizes a raw tag string: lowercase, whitespace and
// underscore runs become a single hyphen, anything outside [a-z0-9-] is
// dropped, hyphen runs collapse, and leading/trailing hyphens are stripped.
// Total and idempotent for any input.
func NormalizeTag(tag string) string {
	s := strings.ToLower(tag)
	s = separatorRuns.ReplaceAllString(s, "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateTag normalizes a raw tag and reconciles it against the controlled
// vocabulary. The vocabulary is advisory, not a whitelist: an unknown tag is
// still valid, optionally with a close vocabulary entry as a suggestion. Only
// a tag that normalizes to the empty string is rejected.
func ValidateTag(rawTag string, vocabulary []string) TagValidationResult {
	normalized := NormalizeTag(rawTag)
	if normalized == "" {
		return TagValidationResult{Valid: false, Normalized: ""}
	}

	for _, entry := range vocabulary {
		if entry == normalized {
			return TagValidationResult{Valid: true, Normalized: normalized}
		}
	}

	best := ""
	bestDistance := -1
	for _, entry := range vocabulary {
		d := editDistance(normalized, entry)
		// Strictly-better keeps the first occurrence on ties
		if bestDistance < 0 || d < bestDistance {
			best = entry
			bestDistance = d
		}
	}

	if bestDistance >= 0 && bestDistance <= maxSuggestionDistance {
		return TagValidationResult{Valid: true, Normalized: normalized, Suggestion: best}
	}
	return TagValidationResult{Valid: true, Normalized: normalized}
}

// editDistance computes the classic Levenshtein distance with unit-cost
// insert, delete, and substitute.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
