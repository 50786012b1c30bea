package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"curio/internal/application/commands"
	"curio/internal/ports"
)

// RegisterWriteTools adds the mutating registry tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, catalog ports.CatalogRepository, themes ports.ThemeRegistry) {
	s.AddTool(approveThemeTool(), approveThemeHandler(themes))
	s.AddTool(recordSubmissionTool(), recordSubmissionHandler(themes))
	s.AddTool(recountThemesTool(), recountThemesHandler(themes, catalog))
}

// --- approve_theme ---

func approveThemeTool() mcp.Tool {
	return mcp.NewTool("approve_theme",
		mcp.WithDescription("Promote an under-review theme to active. Approving a theme that is already active is a no-op."),
		mcp.WithString("theme_id",
			mcp.Description("Theme identifier"),
			mcp.Required(),
		),
		mcp.WithString("approved_by",
			mcp.Description("Name of the approver, recorded in the theme metadata"),
			mcp.Required(),
		),
	)
}

func approveThemeHandler(registry ports.ThemeRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		themeID := req.GetString("theme_id", "")
		approvedBy := req.GetString("approved_by", "")

		result, err := commands.NewApproveThemeCommand(registry, themeID, approvedBy).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- record_submission ---

func recordSubmissionTool() mcp.Tool {
	return mcp.NewTool("record_submission",
		mcp.WithDescription("Record a new tool submission by incrementing the tool count of each theme it belongs to."),
		mcp.WithString("theme_ids",
			mcp.Description("Comma-separated theme identifiers the submitted tool belongs to"),
			mcp.Required(),
		),
	)
}

func recordSubmissionHandler(registry ports.ThemeRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("theme_ids", "")
		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}

		result, err := commands.NewBumpToolCountsCommand(registry, ids).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := result.Message
		if len(result.Unknown) > 0 {
			msg += fmt.Sprintf("; unknown: %s", strings.Join(result.Unknown, ", "))
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- recount_themes ---

func recountThemesTool() mcp.Tool {
	return mcp.NewTool("recount_themes",
		mcp.WithDescription("Recount every theme's tool count from the catalog and persist any corrections."),
	)
}

func recountThemesHandler(registry ports.ThemeRegistry, catalog ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRecountCommand(registry, catalog).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		for id, count := range result.Updated {
			fmt.Fprintf(&sb, "\n%s -> %d", id, count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
