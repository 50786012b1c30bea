package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"curio/internal/domain"
)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Clear existing data
	if _, err := idx.db.Exec(`DELETE FROM tools`); err != nil {
		return nil, err
	}
	if _, err := idx.db.Exec(`DELETE FROM tool_tags`); err != nil {
		return nil, err
	}

	err := idx.walkCatalog(func(relPath string, mtime int64) error {
		stats.FilesScanned++
		tool, tags, ok := idx.loadPage(relPath, mtime)
		if !ok {
			return nil
		}
		if err := idx.insertTool(tool); err != nil {
			return nil // Continue on error
		}
		stats.ToolsAdded++
		stats.TagsAdded += idx.insertTags(relPath, tags)
		return nil
	})
	if err != nil {
		return stats, err
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only pages that changed since the last sync and
// removes entries whose pages are gone
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	var lastSyncUnix int64
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing paths to detect deletions
	existingPaths := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT path FROM tools`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		rows.Scan(&path)
		existingPaths[path] = true
	}
	rows.Close()

	seenPaths := make(map[string]bool)

	err = idx.walkCatalog(func(relPath string, mtime int64) error {
		seenPaths[relPath] = true
		stats.FilesScanned++

		if mtime <= lastSyncUnix && existingPaths[relPath] {
			return nil
		}

		tool, tags, ok := idx.loadPage(relPath, mtime)
		if !ok {
			return nil
		}

		if existingPaths[relPath] {
			if err := idx.updateTool(tool); err == nil {
				stats.ToolsUpdated++
			}
			idx.db.Exec(`DELETE FROM tool_tags WHERE path = ?`, relPath)
		} else {
			if err := idx.insertTool(tool); err != nil {
				return nil
			}
			stats.ToolsAdded++
		}
		stats.TagsAdded += idx.insertTags(relPath, tags)
		return nil
	})
	if err != nil {
		return stats, err
	}

	// Remove entries for deleted pages
	for path := range existingPaths {
		if !seenPaths[path] {
			idx.db.Exec(`DELETE FROM tools WHERE path = ?`, path)
			idx.db.Exec(`DELETE FROM tool_tags WHERE path = ?`, path)
			stats.ToolsDeleted++
		}
	}

	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// walkCatalog visits every eligible tool page under the catalog root
func (idx *Index) walkCatalog(visit func(relPath string, mtime int64) error) error {
	return filepath.Walk(idx.catalogPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		// Skip hidden directories
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != idx.catalogPath {
				return filepath.SkipDir
			}
			return nil
		}

		name := info.Name()
		if !strings.HasSuffix(name, ".md") ||
			strings.EqualFold(name, "README.md") ||
			strings.EqualFold(name, "index.md") ||
			strings.HasPrefix(name, "_") {
			return nil
		}

		relPath, _ := filepath.Rel(idx.catalogPath, path)
		return visit(relPath, info.ModTime().Unix())
	})
}

// loadPage parses one tool page into its index row and normalized tags.
// Pages without a usable header are skipped.
func (idx *Index) loadPage(relPath string, mtime int64) (*domain.IndexedTool, []string, bool) {
	content, err := os.ReadFile(filepath.Join(idx.catalogPath, relPath))
	if err != nil {
		return nil, nil, false
	}

	fields := domain.ParseFrontmatter(string(content))
	if len(fields) == 0 {
		return nil, nil, false
	}

	rec := domain.ToolFromHeader(fields, relPath)
	if rec.Name == "" {
		return nil, nil, false
	}
	category := rec.Category
	if category == "" {
		if dir := filepath.Dir(relPath); dir != "." {
			category = filepath.Base(dir)
		}
	}

	tool := &domain.IndexedTool{
		Path:        relPath,
		Name:        rec.Name,
		Category:    category,
		Description: domain.ExtractDescription(string(content)),
		Mtime:       mtime,
	}
	return tool, rec.NormalizedTags(), true
}

// insertTool adds a tool row
func (idx *Index) insertTool(tool *domain.IndexedTool) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO tools (path, name, category, description, mtime)
		VALUES (?, ?, ?, ?, ?)
	`, tool.Path, tool.Name, tool.Category, tool.Description, tool.Mtime)
	return err
}

// updateTool rewrites a tool row in place
func (idx *Index) updateTool(tool *domain.IndexedTool) error {
	_, err := idx.db.Exec(`
		UPDATE tools SET name = ?, category = ?, description = ?, mtime = ?
		WHERE path = ?
	`, tool.Name, tool.Category, tool.Description, tool.Mtime, tool.Path)
	return err
}

// insertTags adds tag rows for a page, returning how many were written
func (idx *Index) insertTags(relPath string, tags []string) int {
	added := 0
	for _, tag := range tags {
		if _, err := idx.db.Exec(`
			INSERT OR REPLACE INTO tool_tags (path, tag) VALUES (?, ?)
		`, relPath, tag); err == nil {
			added++
		}
	}
	return added
}
