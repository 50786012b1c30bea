package ports

import "curio/internal/domain"

// CatalogRepository defines the interface for reading the tool catalog
type CatalogRepository interface {
	// ScanTools walks the catalog tree and returns a record per eligible
	// tool page. Pages without a parseable header are skipped with a
	// warning; order is directory-listing order.
	ScanTools() ([]domain.ToolRecord, error)

	// ListCategoryDirs returns the category subdirectory names
	ListCategoryDirs() ([]string, error)

	// ReadToolPage returns the raw markdown for a tool page by its
	// catalog-relative path
	ReadToolPage(relPath string) (string, error)

	// Root returns the absolute catalog root path
	Root() string
}
