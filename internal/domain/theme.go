package domain

import "slices"

// ThemeStatus is the lifecycle stage of a theme entry
type ThemeStatus string

const (
	StatusUnderReview ThemeStatus = "under_review"
	StatusActive      ThemeStatus = "active"
)

// ThemeMetadata holds derived bookkeeping for a theme. ToolCount is a cached
// value that can drift from the true reference count; only an explicit recount
// reconciles it.
type ThemeMetadata struct {
	ToolCount  int    `json:"tool_count"`
	ApprovedBy string `json:"approved_by,omitempty"`
}

// Theme is an entry in the theme registry. ID is a slug, unique within the
// registry.
type Theme struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Keywords    []string      `json:"keywords"`
	Categories  []string      `json:"categories"`
	Status      ThemeStatus   `json:"status"`
	Metadata    ThemeMetadata `json:"metadata"`
}

// ThemeCandidate is an ephemeral discovery result. It exists only for the
// duration of a report run and is never persisted.
type ThemeCandidate struct {
	Name       string   `json:"name"`
	Tools      []string `json:"tools"`
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
	Confidence float64  `json:"confidence"`
}

// Category is an entry in the read-only category registry
type Category struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SortThemes sorts themes by ID in ascending order
func SortThemes(themes []Theme) {
	slices.SortFunc(themes, func(a, b Theme) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}

// SortCategories sorts categories by slug in ascending order
func SortCategories(categories []Category) {
	slices.SortFunc(categories, func(a, b Category) int {
		if a.Slug < b.Slug {
			return -1
		}
		if a.Slug > b.Slug {
			return 1
		}
		return 0
	})
}
