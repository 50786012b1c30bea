package commands

import (
	"context"
	"fmt"
	"time"

	"curio/internal/domain"
	"curio/internal/ports"
)

// DiscoveredThemes partitions discovery output by the confidence threshold
type DiscoveredThemes struct {
	HighConfidence []domain.ThemeCandidate `json:"high_confidence"`
	LowConfidence  []domain.ThemeCandidate `json:"low_confidence"`
}

// Report is the JSON artifact written once per run: a pure projection of
// in-memory state, never read back by the core.
type Report struct {
	GeneratedAt       string           `json:"generated_at"`
	TotalTools        int              `json:"total_tools"`
	TotalThemes       int              `json:"total_themes"`
	ActiveThemes      int              `json:"active_themes"`
	ThemesUnderReview int              `json:"themes_under_review"`
	DiscoveredThemes  DiscoveredThemes `json:"discovered_themes"`
	TagFrequency      map[string]int   `json:"tag_frequency"`
	TagIssues         []TagIssue       `json:"tag_issues,omitempty"`
	Recommendations   []string         `json:"recommendations"`
}

// ReportOptions configures report assembly. The confidence threshold is a
// parameter rather than a constant so report consumers can tune the
// high/low partition.
type ReportOptions struct {
	ConfidenceThreshold float64
	Now                 func() time.Time // defaults to time.Now
}

// GenerateReportCommand assembles the summary report from the catalog and the
// theme registry
type GenerateReportCommand struct {
	catalog  ports.CatalogRepository
	registry ports.ThemeRegistry
	Options  ReportOptions
}

// NewGenerateReportCommand creates a new GenerateReportCommand
func NewGenerateReportCommand(catalog ports.CatalogRepository, registry ports.ThemeRegistry, opts ReportOptions) *GenerateReportCommand {
	return &GenerateReportCommand{catalog: catalog, registry: registry, Options: opts}
}

// Execute assembles the report
func (c *GenerateReportCommand) Execute(ctx context.Context) (*Report, error) {
	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}
	domain.SortTools(tools)

	now := c.Options.Now
	if now == nil {
		now = time.Now
	}

	report := &Report{
		GeneratedAt:  now().UTC().Format(time.RFC3339),
		TotalTools:   len(tools),
		TotalThemes:  len(data.Themes),
		TagFrequency: map[string]int{},
	}

	for _, th := range data.Themes {
		switch th.Status {
		case domain.StatusActive:
			report.ActiveThemes++
		case domain.StatusUnderReview:
			report.ThemesUnderReview++
		}
	}

	for _, tool := range tools {
		for _, tag := range tool.NormalizedTags() {
			report.TagFrequency[tag]++
		}
	}

	threshold := c.Options.ConfidenceThreshold
	for _, candidate := range domain.DiscoverThemes(tools) {
		if candidate.Confidence >= threshold {
			report.DiscoveredThemes.HighConfidence = append(report.DiscoveredThemes.HighConfidence, candidate)
		} else {
			report.DiscoveredThemes.LowConfidence = append(report.DiscoveredThemes.LowConfidence, candidate)
		}
	}

	report.TagIssues = sweepIssues(tools, data.SuggestedTags)
	report.Recommendations = recommendations(report, data)

	return report, nil
}

// sweepIssues collects non-exact tag validations across the catalog
func sweepIssues(tools []domain.ToolRecord, vocabulary []string) []TagIssue {
	vocabSet := map[string]struct{}{}
	for _, v := range vocabulary {
		vocabSet[v] = struct{}{}
	}

	var issues []TagIssue
	for _, tool := range tools {
		for _, raw := range tool.Tags {
			r := domain.ValidateTag(raw, vocabulary)
			if _, exact := vocabSet[r.Normalized]; exact && r.Valid {
				continue
			}
			issues = append(issues, TagIssue{
				Tool:       tool.Name,
				Raw:        raw,
				Normalized: r.Normalized,
				Suggestion: r.Suggestion,
				Valid:      r.Valid,
			})
		}
	}
	return issues
}

// recommendations derives human-readable follow-ups from the assembled report
func recommendations(report *Report, data *ports.RegistryData) []string {
	var recs []string

	for _, c := range report.DiscoveredThemes.HighConfidence {
		if data.FindTheme(domain.NormalizeTag(c.Name)) != nil {
			continue
		}
		recs = append(recs, fmt.Sprintf(
			"Propose theme %q: %d tools across %d categories (confidence %.2f)",
			c.Name, len(c.Tools), len(c.Categories), c.Confidence))
	}

	if report.ThemesUnderReview > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d theme(s) awaiting review", report.ThemesUnderReview))
	}

	misspelled := 0
	for _, issue := range report.TagIssues {
		if issue.Suggestion != "" {
			misspelled++
		}
	}
	if misspelled > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d tag(s) look like near-misses of the suggested vocabulary", misspelled))
	}

	if len(recs) == 0 {
		recs = append(recs, "Catalog taxonomy looks healthy")
	}
	return recs
}
