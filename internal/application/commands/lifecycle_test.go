package commands

import (
	"context"
	"errors"
	"testing"

	"curio/internal/application"
	"curio/internal/domain"
	"curio/internal/ports"
)

func registryWithThemes(themes ...domain.Theme) *fakeRegistry {
	return &fakeRegistry{data: ports.RegistryData{Themes: themes}}
}

func TestApproveThemeCommand(t *testing.T) {
	tests := []struct {
		name        string
		theme       domain.Theme
		themeID     string
		wantErr     error
		wantChanged bool
		wantSaves   int
	}{
		{
			name:        "approves under_review theme",
			theme:       domain.Theme{ID: "code-quality", Status: domain.StatusUnderReview},
			themeID:     "code-quality",
			wantChanged: true,
			wantSaves:   1,
		},
		{
			name:        "already active theme is a no-op without write",
			theme:       domain.Theme{ID: "code-quality", Status: domain.StatusActive},
			themeID:     "code-quality",
			wantChanged: false,
			wantSaves:   0,
		},
		{
			name:    "unknown theme",
			theme:   domain.Theme{ID: "code-quality", Status: domain.StatusUnderReview},
			themeID: "missing",
			wantErr: application.ErrThemeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := registryWithThemes(tt.theme)
			cmd := NewApproveThemeCommand(registry, tt.themeID, "maintainer")

			result, err := cmd.Execute(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", result.Changed, tt.wantChanged)
			}
			if registry.saveCount != tt.wantSaves {
				t.Errorf("saveCount = %d, want %d", registry.saveCount, tt.wantSaves)
			}
			if tt.wantChanged {
				saved := registry.data.FindTheme(tt.themeID)
				if saved.Status != domain.StatusActive {
					t.Errorf("saved status = %s, want active", saved.Status)
				}
				if saved.Metadata.ApprovedBy != "maintainer" {
					t.Errorf("approved_by = %q, want maintainer", saved.Metadata.ApprovedBy)
				}
			}
		})
	}
}

func TestApproveThemeCommandIdempotent(t *testing.T) {
	registry := registryWithThemes(domain.Theme{ID: "t", Status: domain.StatusUnderReview})

	first, err := NewApproveThemeCommand(registry, "t", "a").Execute(context.Background())
	if err != nil || !first.Changed {
		t.Fatalf("first approval: changed=%v err=%v", first.Changed, err)
	}

	second, err := NewApproveThemeCommand(registry, "t", "b").Execute(context.Background())
	if err != nil {
		t.Fatalf("second approval: %v", err)
	}
	if second.Changed {
		t.Error("second approval should be a no-op")
	}
	if registry.saveCount != 1 {
		t.Errorf("saveCount = %d, want 1 (no write on no-op)", registry.saveCount)
	}
	if got := registry.data.FindTheme("t").Metadata.ApprovedBy; got != "a" {
		t.Errorf("approved_by = %q, want original approver %q", got, "a")
	}
}

func TestApproveThemeCommandValidate(t *testing.T) {
	registry := registryWithThemes()

	if _, err := NewApproveThemeCommand(registry, "", "x").Execute(context.Background()); err == nil {
		t.Error("expected error for empty theme ID")
	}
	if _, err := NewApproveThemeCommand(registry, "t", "").Execute(context.Background()); err == nil {
		t.Error("expected error for empty approver")
	}
}

func TestBumpToolCountsCommand(t *testing.T) {
	registry := registryWithThemes(
		domain.Theme{ID: "a", Status: domain.StatusActive, Metadata: domain.ThemeMetadata{ToolCount: 3}},
		domain.Theme{ID: "b", Status: domain.StatusUnderReview},
	)

	result, err := NewBumpToolCountsCommand(registry, []string{"a", "b", "a", "ghost"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "a" appears twice in the batch: purely additive, +1 each occurrence
	if got := registry.data.FindTheme("a").Metadata.ToolCount; got != 5 {
		t.Errorf("theme a tool_count = %d, want 5", got)
	}
	if got := registry.data.FindTheme("b").Metadata.ToolCount; got != 1 {
		t.Errorf("theme b tool_count = %d, want 1", got)
	}
	if len(result.Unknown) != 1 || result.Unknown[0] != "ghost" {
		t.Errorf("unknown = %v, want [ghost]", result.Unknown)
	}
	if registry.saveCount != 1 {
		t.Errorf("saveCount = %d, want single all-or-nothing flush", registry.saveCount)
	}
}

func TestBumpToolCountsCommandEmptyBatch(t *testing.T) {
	registry := registryWithThemes()
	if _, err := NewBumpToolCountsCommand(registry, nil).Execute(context.Background()); err == nil {
		t.Error("expected validation error for empty batch")
	}
}

func TestBumpToolCountsCommandAllUnknownSkipsWrite(t *testing.T) {
	registry := registryWithThemes(domain.Theme{ID: "a"})

	result, err := NewBumpToolCountsCommand(registry, []string{"ghost"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Bumped) != 0 || registry.saveCount != 0 {
		t.Errorf("bumped=%v saves=%d, want no bump and no write", result.Bumped, registry.saveCount)
	}
}

func TestRecountCommand(t *testing.T) {
	registry := registryWithThemes(
		domain.Theme{ID: "observability", Metadata: domain.ThemeMetadata{ToolCount: 9}},
		domain.Theme{ID: "testing", Metadata: domain.ThemeMetadata{ToolCount: 1}},
	)
	catalog := &fakeCatalog{tools: []domain.ToolRecord{
		{Name: "t1", Themes: []string{"observability"}},
		{Name: "t2", Themes: []string{"observability", "testing"}},
	}}

	result, err := NewRecountCommand(registry, catalog).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := registry.data.FindTheme("observability").Metadata.ToolCount; got != 2 {
		t.Errorf("observability count = %d, want 2", got)
	}
	if got := registry.data.FindTheme("testing").Metadata.ToolCount; got != 1 {
		t.Errorf("testing count = %d, want 1", got)
	}
	// Only the drifted theme appears in the change set
	if len(result.Updated) != 1 {
		t.Errorf("updated = %v, want only the drifted theme", result.Updated)
	}
}

func TestRecountCommandNoDriftSkipsWrite(t *testing.T) {
	registry := registryWithThemes(domain.Theme{ID: "a", Metadata: domain.ThemeMetadata{ToolCount: 1}})
	catalog := &fakeCatalog{tools: []domain.ToolRecord{{Name: "t", Themes: []string{"a"}}}}

	if _, err := NewRecountCommand(registry, catalog).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registry.saveCount != 0 {
		t.Errorf("saveCount = %d, want 0 when counts already match", registry.saveCount)
	}
}
