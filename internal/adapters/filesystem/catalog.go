package filesystem

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"curio/internal/application"
	"curio/internal/domain"
	"curio/internal/ports"
)

// Catalog implements ports.CatalogRepository over a directory tree of
// markdown tool pages grouped by category subdirectory
type Catalog struct {
	root string
}

// Ensure Catalog implements CatalogRepository
var _ ports.CatalogRepository = (*Catalog)(nil)

// NewCatalog creates a new filesystem catalog repository
func NewCatalog(root string) *Catalog {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Catalog{root: root}
}

// Root returns the absolute catalog root path
func (c *Catalog) Root() string {
	return c.root
}

// ScanTools walks the catalog tree and builds a record per eligible tool
// page. Pages without a parseable header are skipped with a warning and do not
// abort the scan. Record order is directory-listing order.
func (c *Catalog) ScanTools() ([]domain.ToolRecord, error) {
	if _, err := os.Stat(c.root); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.root, application.ErrMissingFile)
	}

	var tools []domain.ToolRecord
	err := filepath.Walk(c.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != c.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !eligiblePage(info.Name()) {
			return nil
		}

		relPath, _ := filepath.Rel(c.root, path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("warning: skipping %s: %v", relPath, err)
			return nil
		}

		fields := domain.ParseFrontmatter(string(content))
		if len(fields) == 0 {
			log.Printf("warning: skipping %s: no header block", relPath)
			return nil
		}

		rec := domain.ToolFromHeader(fields, relPath)
		if rec.Name == "" {
			log.Printf("warning: skipping %s: header has no tool name", relPath)
			return nil
		}
		if rec.Category == "" {
			rec.Category = categoryFromPath(relPath)
		}
		rec.Description = domain.ExtractDescription(string(content))

		tools = append(tools, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}

	return tools, nil
}

// ListCategoryDirs returns the category subdirectory names in listing order
func (c *Catalog) ListCategoryDirs() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// ReadToolPage returns the raw markdown for a page by catalog-relative path
func (c *Catalog) ReadToolPage(relPath string) (string, error) {
	content, err := os.ReadFile(filepath.Join(c.root, relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("page %s: %w", relPath, application.ErrMissingFile)
		}
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(content), nil
}

// eligiblePage reports whether a file name is a tool page: markdown, not a
// README/index placeholder, not underscore-prefixed
func eligiblePage(name string) bool {
	if !strings.HasSuffix(name, ".md") {
		return false
	}
	lower := strings.ToLower(name)
	if lower == "readme.md" || lower == "index.md" {
		return false
	}
	return !strings.HasPrefix(name, "_")
}

// categoryFromPath derives the category slug from the page's parent directory
func categoryFromPath(relPath string) string {
	dir := filepath.Dir(relPath)
	if dir == "." {
		return ""
	}
	return filepath.Base(dir)
}

