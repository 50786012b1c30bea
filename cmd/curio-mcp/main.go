package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"curio/internal/adapters/filesystem"
	mcpadapter "curio/internal/adapters/mcp"
	"curio/internal/adapters/sqlite"
	"curio/internal/application/commands"
	"curio/internal/config"
	"curio/internal/ports"
)

func main() {
	catalogFlag := flag.String("catalog", config.CatalogPath(), "path to the catalog root")
	themesFlag := flag.String("themes", config.ThemesPath(), "path to the theme registry")
	categoriesFlag := flag.String("categories", config.CategoriesPath(), "path to the category registry")
	flag.Parse()

	catalog := filesystem.NewCatalog(*catalogFlag)
	themes := filesystem.NewThemeRegistry(*themesFlag)
	categories := filesystem.NewCategoryRegistry(*categoriesFlag)

	// Best-effort search index: search is simply not offered if it fails
	var index ports.CatalogIndex
	idx := sqlite.NewIndex()
	if err := idx.Open(*catalogFlag); err != nil {
		log.Printf("warning: search index unavailable: %v", err)
	} else {
		defer idx.Close()
		if _, err := commands.NewSyncCommand(idx, false).Execute(context.Background()); err != nil {
			log.Printf("warning: index sync failed: %v", err)
		}
		index = idx
	}

	mcpServer := server.NewMCPServer(
		"curio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, catalog, themes, categories, index)
	mcpadapter.RegisterWriteTools(mcpServer, catalog, themes)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("curio-mcp: %v", err)
	}
}
