package commands

import (
	"context"
	"fmt"

	"curio/internal/application"
	"curio/internal/domain"
	"curio/internal/ports"
)

// ApproveThemeResult contains the result of an approval attempt
type ApproveThemeResult struct {
	Theme   *domain.Theme
	Changed bool
	Message string
}

// ApproveThemeCommand transitions a theme from under_review to active.
// Approving a theme that is not under review is a no-op: the registry is not
// rewritten and no error is returned, so repeated approvals are idempotent
// after the first transition.
type ApproveThemeCommand struct {
	registry   ports.ThemeRegistry
	ThemeID    string
	ApprovedBy string
}

// NewApproveThemeCommand creates a new ApproveThemeCommand
func NewApproveThemeCommand(registry ports.ThemeRegistry, themeID, approvedBy string) *ApproveThemeCommand {
	return &ApproveThemeCommand{
		registry:   registry,
		ThemeID:    themeID,
		ApprovedBy: approvedBy,
	}
}

// Validate checks if the approve operation is valid
func (c *ApproveThemeCommand) Validate() error {
	if err := application.ValidateRequired("themeID", c.ThemeID); err != nil {
		return err
	}
	return application.ValidateRequired("approvedBy", c.ApprovedBy)
}

// Execute runs the approve command
func (c *ApproveThemeCommand) Execute(ctx context.Context) (*ApproveThemeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	theme := data.FindTheme(c.ThemeID)
	if theme == nil {
		return nil, fmt.Errorf("theme %q: %w", c.ThemeID, application.ErrThemeNotFound)
	}

	if theme.Status != domain.StatusUnderReview {
		return &ApproveThemeResult{
			Theme:   theme,
			Changed: false,
			Message: fmt.Sprintf("Theme %s is already %s", theme.ID, theme.Status),
		}, nil
	}

	theme.Status = domain.StatusActive
	theme.Metadata.ApprovedBy = c.ApprovedBy

	if err := c.registry.Save(data); err != nil {
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	return &ApproveThemeResult{
		Theme:   theme,
		Changed: true,
		Message: fmt.Sprintf("Approved theme %s (by %s)", theme.ID, c.ApprovedBy),
	}, nil
}

// BumpToolCountsResult contains the result of a batch tool-count bump
type BumpToolCountsResult struct {
	Bumped  []string
	Unknown []string
	Message string
}

// BumpToolCountsCommand adds 1 to tool_count for each given theme id. Purely
// additive bookkeeping for tool-submission events; membership is not
// recounted. The registry is flushed once after the whole batch, so a partial
// failure never leaves a half-written file.
type BumpToolCountsCommand struct {
	registry ports.ThemeRegistry
	ThemeIDs []string
}

// NewBumpToolCountsCommand creates a new BumpToolCountsCommand
func NewBumpToolCountsCommand(registry ports.ThemeRegistry, themeIDs []string) *BumpToolCountsCommand {
	return &BumpToolCountsCommand{registry: registry, ThemeIDs: themeIDs}
}

// Execute runs the bump command
func (c *BumpToolCountsCommand) Execute(ctx context.Context) (*BumpToolCountsResult, error) {
	if len(c.ThemeIDs) == 0 {
		return nil, &application.ValidationError{
			Field:   "themeIDs",
			Message: "at least one theme ID is required",
		}
	}

	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	result := &BumpToolCountsResult{}
	for _, id := range c.ThemeIDs {
		theme := data.FindTheme(id)
		if theme == nil {
			result.Unknown = append(result.Unknown, id)
			continue
		}
		theme.Metadata.ToolCount++
		result.Bumped = append(result.Bumped, id)
	}

	if len(result.Bumped) > 0 {
		if err := c.registry.Save(data); err != nil {
			return nil, fmt.Errorf("failed to persist tool counts: %w", err)
		}
	}

	result.Message = fmt.Sprintf("Bumped %d theme(s)", len(result.Bumped))
	return result, nil
}

// RecountResult contains the result of a tool-count recount
type RecountResult struct {
	Updated map[string]int // theme id -> new count, only where it changed
	Message string
}

// RecountCommand reconciles every theme's cached tool_count with the true
// number of catalog tools referencing it. This is the only place the derived
// cache is corrected; everywhere else it is treated as eventually consistent.
type RecountCommand struct {
	registry ports.ThemeRegistry
	catalog  ports.CatalogRepository
}

// NewRecountCommand creates a new RecountCommand
func NewRecountCommand(registry ports.ThemeRegistry, catalog ports.CatalogRepository) *RecountCommand {
	return &RecountCommand{registry: registry, catalog: catalog}
}

// Execute runs the recount command
func (c *RecountCommand) Execute(ctx context.Context) (*RecountResult, error) {
	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, tool := range tools {
		for _, id := range tool.Themes {
			counts[id]++
		}
	}

	result := &RecountResult{Updated: map[string]int{}}
	for i := range data.Themes {
		actual := counts[data.Themes[i].ID]
		if data.Themes[i].Metadata.ToolCount != actual {
			data.Themes[i].Metadata.ToolCount = actual
			result.Updated[data.Themes[i].ID] = actual
		}
	}

	if len(result.Updated) > 0 {
		if err := c.registry.Save(data); err != nil {
			return nil, fmt.Errorf("failed to persist recount: %w", err)
		}
	}

	result.Message = fmt.Sprintf("Recounted %d theme(s), %d updated", len(data.Themes), len(result.Updated))
	return result, nil
}
