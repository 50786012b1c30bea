package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"curio/internal/application/commands"
	"curio/internal/domain"
	"curio/internal/ports"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server. The
// index may be nil when the search index is unavailable; the search tool is
// then not registered.
func RegisterReadTools(s *server.MCPServer, catalog ports.CatalogRepository, themes ports.ThemeRegistry, categories ports.CategoryRegistry, index ports.CatalogIndex) {
	s.AddTool(listToolsTool(), listToolsHandler(catalog))
	s.AddTool(listThemesTool(), listThemesHandler(themes))
	s.AddTool(listCategoriesTool(), listCategoriesHandler(categories))
	s.AddTool(validateTagTool(), validateTagHandler(themes))
	s.AddTool(discoverThemesTool(), discoverThemesHandler(catalog))
	s.AddTool(readPageTool(), readPageHandler(catalog))
	if index != nil {
		s.AddTool(searchTool(), searchHandler(index))
	}
}

// --- list_tools ---

func listToolsTool() mcp.Tool {
	return mcp.NewTool("list_tools",
		mcp.WithDescription("List documented tools in the catalog, optionally filtered by category slug."),
		mcp.WithString("category",
			mcp.Description("Category slug to filter by (e.g. quality). Omit to list everything."),
		),
	)
}

func listToolsHandler(catalog ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")

		tools, err := commands.NewListToolsCommand(catalog, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tools, formatTool)
	}
}

// --- list_themes ---

func listThemesTool() mcp.Tool {
	return mcp.NewTool("list_themes",
		mcp.WithDescription("List themes in the registry with status and tool counts. Optionally filter by status."),
		mcp.WithString("status",
			mcp.Description("Theme status filter: under_review or active. Omit for all."),
		),
	)
}

func listThemesHandler(registry ports.ThemeRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status := domain.ThemeStatus(req.GetString("status", ""))
		if status != "" && status != domain.StatusUnderReview && status != domain.StatusActive {
			return toolError(fmt.Errorf("invalid status: %s (expected under_review or active)", status))
		}

		themes, err := commands.NewListThemesCommand(registry, status).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(themes, formatTheme)
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List the category registry (slug, title, description)."),
	)
}

func listCategoriesHandler(registry ports.CategoryRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := commands.NewListCategoriesCommand(registry).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, formatCategory)
	}
}

// --- validate_tag ---

func validateTagTool() mcp.Tool {
	return mcp.NewTool("validate_tag",
		mcp.WithDescription("Normalize a free-text tag and check it against the suggested-tag vocabulary. Returns the normalized form and a close suggestion when one exists."),
		mcp.WithString("tag",
			mcp.Description("Raw tag text"),
			mcp.Required(),
		),
	)
}

func validateTagHandler(registry ports.ThemeRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tag := req.GetString("tag", "")
		if tag == "" {
			return toolError(fmt.Errorf("tag is required"))
		}

		result, err := commands.NewValidateTagCommand(registry, tag).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if !result.Valid {
			return mcp.NewToolResultText("Invalid: tag normalizes to nothing."), nil
		}
		if result.Suggestion != "" {
			return mcp.NewToolResultText(fmt.Sprintf("%s (did you mean %q?)", result.Normalized, result.Suggestion)), nil
		}
		return mcp.NewToolResultText(result.Normalized), nil
	}
}

// --- discover_themes ---

func discoverThemesTool() mcp.Tool {
	return mcp.NewTool("discover_themes",
		mcp.WithDescription("Cluster catalog tools into candidate themes with confidence scores."),
	)
}

func discoverThemesHandler(catalog ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		candidates, err := commands.NewDiscoverThemesCommand(catalog).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(candidates) == 0 {
			return mcp.NewToolResultText("No theme candidates found."), nil
		}

		var sb strings.Builder
		for _, c := range candidates {
			fmt.Fprintf(&sb, "%s  confidence=%.2f  tools=%d  keywords=%s\n",
				c.Name, c.Confidence, len(c.Tools), strings.Join(c.Keywords, ","))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_page ---

func readPageTool() mcp.Tool {
	return mcp.NewTool("read_page",
		mcp.WithDescription("Read the raw markdown for a tool page by its catalog-relative path."),
		mcp.WithString("path",
			mcp.Description("Catalog-relative page path (e.g. quality/linty.md)"),
			mcp.Required(),
		),
	)
}

func readPageHandler(catalog ports.CatalogRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		content, err := catalog.ReadToolPage(path)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search over tool names, categories, descriptions, and tags."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(index ports.CatalogIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		results, err := commands.NewSearchCommand(index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatSearchResult)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatTool(t domain.ToolRecord) string {
	return fmt.Sprintf("%s  [%s]  %s", t.Name, t.Category, t.Description)
}

func formatTheme(t domain.Theme) string {
	return fmt.Sprintf("%s  status=%s  tools=%d  %s", t.ID, t.Status, t.Metadata.ToolCount, t.Name)
}

func formatCategory(c domain.Category) string {
	return fmt.Sprintf("%s  %s", c.Slug, c.Title)
}

func formatSearchResult(r commands.SearchResult) string {
	return fmt.Sprintf("%s  [%s]  %s", r.Name, r.Category, r.MatchedText)
}
