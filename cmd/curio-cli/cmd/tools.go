package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curio/internal/application/commands"
)

var toolsCategory string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect tools in the catalog",
	Long: `Inspect the documented tools in the catalog.

Examples:
  curio-cli tools list
  curio-cli tools list --category quality
  curio-cli tools show linty`,
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools, optionally filtered by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tools, err := commands.NewListToolsCommand(GetCatalog(), toolsCategory).Execute(ctx)
		if err != nil {
			return err
		}

		for _, t := range tools {
			fmt.Printf("%-24s %-16s %s\n", t.Name, t.Category, t.Description)
		}
		return nil
	},
}

var toolsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single tool record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tool, err := commands.NewShowToolCommand(GetCatalog(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", tool.Name)
		fmt.Printf("Category:    %s\n", tool.Category)
		fmt.Printf("Repository:  %s\n", tool.RepositoryURL)
		fmt.Printf("Tags:        %s\n", strings.Join(tool.NormalizedTags(), ", "))
		fmt.Printf("Themes:      %s\n", strings.Join(tool.Themes, ", "))
		if tool.SubmittedDate != "" {
			fmt.Printf("Submitted:   %s\n", tool.SubmittedDate)
		}
		fmt.Printf("Source:      %s\n", tool.SourceFile)
		fmt.Printf("Description: %s\n", tool.Description)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cats, err := commands.NewListCategoriesCommand(GetCategories()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range cats {
			fmt.Printf("%-16s %-24s %s\n", c.Slug, c.Title, c.Description)
		}
		return nil
	},
}

func init() {
	toolsListCmd.Flags().StringVar(&toolsCategory, "category", "", "filter by category slug")

	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsShowCmd)
	rootCmd.AddCommand(categoriesCmd)
}
