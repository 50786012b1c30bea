package commands

import (
	"context"
	"testing"
	"time"

	"curio/internal/domain"
	"curio/internal/ports"
)

func TestGenerateReportCommand(t *testing.T) {
	registry := &fakeRegistry{data: ports.RegistryData{
		Themes: []domain.Theme{
			{ID: "code-quality", Status: domain.StatusActive},
			{ID: "pipelines", Status: domain.StatusUnderReview},
		},
		SuggestedTags: []string{"linting", "ci"},
	}}
	catalog := &fakeCatalog{tools: []domain.ToolRecord{
		{Name: "a", Category: "quality", Tags: []string{"linting", "ci"}},
		{Name: "b", Category: "quality", Tags: []string{"linting", "ci"}},
		{Name: "c", Category: "automation", Tags: []string{"ci"}},
		{Name: "d", Category: "automation", Tags: []string{"ci", "linting"}},
		{Name: "e", Category: "misc", Tags: []string{"linting"}},
	}}

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cmd := NewGenerateReportCommand(catalog, registry, ReportOptions{
		ConfidenceThreshold: 0.6,
		Now:                 func() time.Time { return fixed },
	})

	report, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.GeneratedAt != "2026-08-31T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", report.GeneratedAt)
	}
	if report.TotalTools != 5 || report.TotalThemes != 2 {
		t.Errorf("totals = %d tools %d themes, want 5 and 2", report.TotalTools, report.TotalThemes)
	}
	if report.ActiveThemes != 1 || report.ThemesUnderReview != 1 {
		t.Errorf("status counts = %d active %d review, want 1 and 1",
			report.ActiveThemes, report.ThemesUnderReview)
	}

	if got := report.TagFrequency["ci"]; got != 4 {
		t.Errorf("tag frequency for ci = %d, want 4", got)
	}
	if got := report.TagFrequency["linting"]; got != 4 {
		t.Errorf("tag frequency for linting = %d, want 4", got)
	}

	// "linting" and "ci" co-occur, forming one 5-tool, 2-keyword,
	// 3-category cluster: 0.4 + 0.1 + 0.2 = 0.7 >= threshold
	if len(report.DiscoveredThemes.HighConfidence) != 1 {
		t.Fatalf("high confidence = %+v, want one candidate", report.DiscoveredThemes.HighConfidence)
	}
	if len(report.DiscoveredThemes.LowConfidence) != 0 {
		t.Errorf("low confidence = %+v, want none", report.DiscoveredThemes.LowConfidence)
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestGenerateReportCommandThresholdIsParameter(t *testing.T) {
	registry := &fakeRegistry{data: ports.RegistryData{}}
	catalog := &fakeCatalog{tools: []domain.ToolRecord{
		{Name: "a", Category: "x", Tags: []string{"shared"}},
		{Name: "b", Category: "x", Tags: []string{"shared"}},
	}}

	// Cluster scores 0.15 + 0 + 0.1 = 0.25
	strict := NewGenerateReportCommand(catalog, registry, ReportOptions{ConfidenceThreshold: 0.6})
	report, err := strict.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.DiscoveredThemes.LowConfidence) != 1 {
		t.Errorf("strict threshold: low = %+v, want the one candidate", report.DiscoveredThemes.LowConfidence)
	}

	lenient := NewGenerateReportCommand(catalog, registry, ReportOptions{ConfidenceThreshold: 0.2})
	report, err = lenient.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.DiscoveredThemes.HighConfidence) != 1 {
		t.Errorf("lenient threshold: high = %+v, want the one candidate", report.DiscoveredThemes.HighConfidence)
	}
}

func TestGenerateReportCommandEmptyCatalog(t *testing.T) {
	registry := &fakeRegistry{data: ports.RegistryData{}}
	catalog := &fakeCatalog{}

	report, err := NewGenerateReportCommand(catalog, registry, ReportOptions{ConfidenceThreshold: 0.6}).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalTools != 0 {
		t.Errorf("TotalTools = %d, want 0", report.TotalTools)
	}
	if len(report.Recommendations) == 0 {
		t.Error("empty catalog should still produce a recommendation line")
	}
}
