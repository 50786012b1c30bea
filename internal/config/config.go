package config

import "os"

const (
	DefaultCatalogPath    = "tools"
	DefaultThemesPath     = "data/themes.json"
	DefaultCategoriesPath = "data/categories.json"

	// DefaultConfidenceThreshold partitions discovered themes into
	// high/low confidence in reports. Overridable per run.
	DefaultConfidenceThreshold = 0.6
)

// CatalogPath returns the catalog path from CURIO_CATALOG env var,
// falling back to DefaultCatalogPath.
func CatalogPath() string {
	if env := os.Getenv("CURIO_CATALOG"); env != "" {
		return env
	}
	return DefaultCatalogPath
}

// ThemesPath returns the theme registry path from CURIO_THEMES env var,
// falling back to DefaultThemesPath.
func ThemesPath() string {
	if env := os.Getenv("CURIO_THEMES"); env != "" {
		return env
	}
	return DefaultThemesPath
}

// CategoriesPath returns the category registry path from CURIO_CATEGORIES
// env var, falling back to DefaultCategoriesPath.
func CategoriesPath() string {
	if env := os.Getenv("CURIO_CATEGORIES"); env != "" {
		return env
	}
	return DefaultCategoriesPath
}
