package commands

import (
	"context"

	"curio/internal/domain"
	"curio/internal/ports"
)

// DiscoverThemesCommand clusters catalog tools into theme candidates
type DiscoverThemesCommand struct {
	catalog ports.CatalogRepository
}

// NewDiscoverThemesCommand creates a new DiscoverThemesCommand
func NewDiscoverThemesCommand(catalog ports.CatalogRepository) *DiscoverThemesCommand {
	return &DiscoverThemesCommand{catalog: catalog}
}

// Execute runs theme discovery over the full catalog
func (c *DiscoverThemesCommand) Execute(ctx context.Context) ([]domain.ThemeCandidate, error) {
	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}
	return domain.DiscoverThemes(tools), nil
}
