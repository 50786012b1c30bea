package domain

import "slices"

// FallbackDescription is used when a tool page has no extractable description
const FallbackDescription = "No description provided"

// ToolRecord is an immutable per-run snapshot of one documented tool, built
// by scanning its catalog page. It is never written back to disk.
type ToolRecord struct {
	Name          string   `json:"name"`
	RepositoryURL string   `json:"repository_url"`
	Category      string   `json:"category"`
	Themes        []string `json:"themes"`
	Tags          []string `json:"tags"`
	SubmittedDate string   `json:"submitted_date,omitempty"`
	SourceFile    string   `json:"source_file"`
	Description   string   `json:"description"`
}

// ToolFromHeader maps an untyped frontmatter mapping to a ToolRecord. Decoding
// fails closed: a field of the wrong shape (list where a scalar is expected,
// or the reverse) is treated as absent rather than coerced.
//
// Themes are accepted either as a "themes" list or as a "primary_theme" scalar
// plus an optional "secondary_themes" list, primary first.
func ToolFromHeader(fields map[string]Value, sourceFile string) ToolRecord {
	rec := ToolRecord{
		Name:          scalarField(fields, "tool_name", "name"),
		RepositoryURL: scalarField(fields, "repository_url", "repository", "repo"),
		Category:      scalarField(fields, "category"),
		Tags:          listField(fields, "tags"),
		SubmittedDate: scalarField(fields, "submitted_date"),
		SourceFile:    sourceFile,
	}

	if themes := listField(fields, "themes"); len(themes) > 0 {
		rec.Themes = themes
	} else if primary := scalarField(fields, "primary_theme"); primary != "" {
		rec.Themes = append([]string{primary}, listField(fields, "secondary_themes")...)
	}

	return rec
}

// NormalizedTags returns the tool's tags after normalization, deduplicated,
// with empty results dropped. Order follows the original tag order.
func (t ToolRecord) NormalizedTags() []string {
	var tags []string
	for _, raw := range t.Tags {
		n := NormalizeTag(raw)
		if n == "" || slices.Contains(tags, n) {
			continue
		}
		tags = append(tags, n)
	}
	return tags
}

// SortTools sorts tool records by name in ascending order. Loader order is
// directory-listing order, so callers needing determinism sort explicitly.
func SortTools(tools []ToolRecord) {
	slices.SortFunc(tools, func(a, b ToolRecord) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
}

// scalarField returns the first named field that holds a non-empty scalar
func scalarField(fields map[string]Value, names ...string) string {
	for _, name := range names {
		if v, ok := fields[name]; ok && !v.IsList && v.Scalar != "" {
			return v.Scalar
		}
	}
	return ""
}

// listField returns the first named field that holds a list
func listField(fields map[string]Value, names ...string) []string {
	for _, name := range names {
		if v, ok := fields[name]; ok && v.IsList {
			return v.List
		}
	}
	return nil
}
