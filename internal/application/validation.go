package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words for
// more readable error messages (e.g., "themeID" -> "theme ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"themeID":    "theme ID",
		"approvedBy": "approver",
		"query":      "query",
		"outPath":    "output path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
