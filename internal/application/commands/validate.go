package commands

import (
	"context"

	"curio/internal/domain"
	"curio/internal/ports"
)

// TagIssue is one tag that did not match the controlled vocabulary exactly
type TagIssue struct {
	Tool       string `json:"tool"`
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Suggestion string `json:"suggestion,omitempty"`
	Valid      bool   `json:"valid"`
}

// ValidateTagCommand validates a single raw tag against the registry's
// suggested-tag vocabulary
type ValidateTagCommand struct {
	registry ports.ThemeRegistry
	Tag      string
}

// NewValidateTagCommand creates a new ValidateTagCommand
func NewValidateTagCommand(registry ports.ThemeRegistry, tag string) *ValidateTagCommand {
	return &ValidateTagCommand{registry: registry, Tag: tag}
}

// Execute runs the validate tag command
func (c *ValidateTagCommand) Execute(ctx context.Context) (domain.TagValidationResult, error) {
	data, err := c.registry.Load()
	if err != nil {
		return domain.TagValidationResult{}, err
	}
	return domain.ValidateTag(c.Tag, data.SuggestedTags), nil
}

// SweepTagsResult summarizes a catalog-wide tag validation pass
type SweepTagsResult struct {
	ToolsChecked int        `json:"tools_checked"`
	TagsChecked  int        `json:"tags_checked"`
	Issues       []TagIssue `json:"issues"`
}

// SweepTagsCommand validates every tag of every tool in the catalog. Exact
// vocabulary matches are silent; everything else (unknown tags, tags with a
// close suggestion, tags that normalize to nothing) is reported as an issue.
type SweepTagsCommand struct {
	catalog  ports.CatalogRepository
	registry ports.ThemeRegistry
}

// NewSweepTagsCommand creates a new SweepTagsCommand
func NewSweepTagsCommand(catalog ports.CatalogRepository, registry ports.ThemeRegistry) *SweepTagsCommand {
	return &SweepTagsCommand{catalog: catalog, registry: registry}
}

// Execute runs the sweep
func (c *SweepTagsCommand) Execute(ctx context.Context) (*SweepTagsResult, error) {
	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}
	domain.SortTools(tools)

	result := &SweepTagsResult{ToolsChecked: len(tools)}
	vocabSet := map[string]struct{}{}
	for _, v := range data.SuggestedTags {
		vocabSet[v] = struct{}{}
	}

	for _, tool := range tools {
		for _, raw := range tool.Tags {
			result.TagsChecked++
			r := domain.ValidateTag(raw, data.SuggestedTags)
			if _, exact := vocabSet[r.Normalized]; exact && r.Valid {
				continue
			}
			result.Issues = append(result.Issues, TagIssue{
				Tool:       tool.Name,
				Raw:        raw,
				Normalized: r.Normalized,
				Suggestion: r.Suggestion,
				Valid:      r.Valid,
			})
		}
	}

	return result, nil
}
