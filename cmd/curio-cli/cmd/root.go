package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"curio/internal/adapters/filesystem"
	"curio/internal/adapters/sqlite"
	"curio/internal/config"
	"curio/internal/ports"
)

var (
	catalogPath    string
	themesPath     string
	categoriesPath string

	catalog    ports.CatalogRepository
	themes     ports.ThemeRegistry
	categories ports.CategoryRegistry
)

var rootCmd = &cobra.Command{
	Use:   "curio-cli",
	Short: "CLI for curating a documented-tool catalog",
	Long: `curio-cli manages a catalog of documented tools: markdown pages with
structured headers plus JSON registries for themes and categories.

It provides commands to list tools and themes, validate tags against the
suggested vocabulary, discover candidate themes from tag clusters, manage
the theme lifecycle, and generate summary reports.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		catalog = filesystem.NewCatalog(catalogPath)
		themes = filesystem.NewThemeRegistry(themesPath)
		categories = filesystem.NewCategoryRegistry(categoriesPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", config.CatalogPath(), "path to the catalog root")
	rootCmd.PersistentFlags().StringVar(&themesPath, "themes", config.ThemesPath(), "path to the theme registry")
	rootCmd.PersistentFlags().StringVar(&categoriesPath, "categories", config.CategoriesPath(), "path to the category registry")
}

// GetCatalog returns the initialized catalog repository
func GetCatalog() ports.CatalogRepository {
	return catalog
}

// GetThemes returns the initialized theme registry
func GetThemes() ports.ThemeRegistry {
	return themes
}

// GetCategories returns the initialized category registry
func GetCategories() ports.CategoryRegistry {
	return categories
}

// openIndex opens the SQLite search index for the configured catalog.
// Callers must Close it.
func openIndex() (ports.CatalogIndex, error) {
	idx := sqlite.NewIndex()
	if err := idx.Open(catalogPath); err != nil {
		return nil, err
	}
	return idx, nil
}
