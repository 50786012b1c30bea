package application

import "curio/internal/domain"

// Re-export domain types for use by adapters
type (
	ToolRecord          = domain.ToolRecord
	Theme               = domain.Theme
	ThemeCandidate      = domain.ThemeCandidate
	TagValidationResult = domain.TagValidationResult
	Category            = domain.Category
	SearchResult        = domain.SearchResult
)

// Theme status constants re-exported for adapters
const (
	StatusUnderReview = domain.StatusUnderReview
	StatusActive      = domain.StatusActive
)
