package commands

import (
	"context"
	"fmt"

	"curio/internal/application"
	"curio/internal/domain"
	"curio/internal/ports"
)

// ListToolsCommand lists all tools in the catalog, sorted by name
type ListToolsCommand struct {
	catalog  ports.CatalogRepository
	Category string // optional filter
}

// NewListToolsCommand creates a new ListToolsCommand
func NewListToolsCommand(catalog ports.CatalogRepository, category string) *ListToolsCommand {
	return &ListToolsCommand{catalog: catalog, Category: category}
}

// Execute runs the list tools command
func (c *ListToolsCommand) Execute(ctx context.Context) ([]domain.ToolRecord, error) {
	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}

	if c.Category != "" {
		filtered := tools[:0]
		for _, t := range tools {
			if t.Category == c.Category {
				filtered = append(filtered, t)
			}
		}
		tools = filtered
	}

	domain.SortTools(tools)
	return tools, nil
}

// ShowToolCommand returns a single tool record by name
type ShowToolCommand struct {
	catalog ports.CatalogRepository
	Name    string
}

// NewShowToolCommand creates a new ShowToolCommand
func NewShowToolCommand(catalog ports.CatalogRepository, name string) *ShowToolCommand {
	return &ShowToolCommand{catalog: catalog, Name: name}
}

// Execute runs the show tool command
func (c *ShowToolCommand) Execute(ctx context.Context) (*domain.ToolRecord, error) {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return nil, err
	}

	tools, err := c.catalog.ScanTools()
	if err != nil {
		return nil, err
	}

	for i := range tools {
		if tools[i].Name == c.Name {
			return &tools[i], nil
		}
	}
	return nil, fmt.Errorf("tool %q: %w", c.Name, application.ErrMissingFile)
}

// ListThemesCommand lists all themes in the registry, sorted by ID
type ListThemesCommand struct {
	registry ports.ThemeRegistry
	Status   domain.ThemeStatus // optional filter, empty for all
}

// NewListThemesCommand creates a new ListThemesCommand
func NewListThemesCommand(registry ports.ThemeRegistry, status domain.ThemeStatus) *ListThemesCommand {
	return &ListThemesCommand{registry: registry, Status: status}
}

// Execute runs the list themes command
func (c *ListThemesCommand) Execute(ctx context.Context) ([]domain.Theme, error) {
	data, err := c.registry.Load()
	if err != nil {
		return nil, err
	}

	themes := data.Themes
	if c.Status != "" {
		filtered := themes[:0]
		for _, th := range themes {
			if th.Status == c.Status {
				filtered = append(filtered, th)
			}
		}
		themes = filtered
	}

	domain.SortThemes(themes)
	return themes, nil
}

// ListCategoriesCommand lists the category registry, sorted by slug
type ListCategoriesCommand struct {
	registry ports.CategoryRegistry
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(registry ports.CategoryRegistry) *ListCategoriesCommand {
	return &ListCategoriesCommand{registry: registry}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.registry.Categories()
	if err != nil {
		return nil, err
	}
	domain.SortCategories(categories)
	return categories, nil
}
