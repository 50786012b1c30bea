package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"curio/internal/domain"
	"curio/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.CatalogIndex using SQLite
type Index struct {
	db          *sql.DB
	catalogPath string
	dbPath      string
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given catalog path
func (idx *Index) Open(catalogPath string) error {
	// Expand ~ in path
	if len(catalogPath) > 0 && catalogPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		catalogPath = filepath.Join(home, catalogPath[1:])
	}

	idx.catalogPath = catalogPath
	idx.dbPath = databasePath(catalogPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS tools (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			description TEXT,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tool_tags (
			path TEXT NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (path, tag)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tools_name ON tools(name);
		CREATE INDEX IF NOT EXISTS idx_tools_category ON tools(category);
		CREATE INDEX IF NOT EXISTS idx_tool_tags_tag ON tool_tags(tag);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, catalogHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'catalog_path_hash'").Scan(&catalogHash)

	expectedHash := hashCatalogPath(idx.catalogPath)

	return version != schemaVersion || catalogHash != expectedHash
}

// GetTool returns one indexed tool by catalog-relative path
func (idx *Index) GetTool(path string) (*domain.IndexedTool, error) {
	var tool domain.IndexedTool
	err := idx.db.QueryRow(`
		SELECT path, name, category, description, mtime
		FROM tools WHERE path = ?
	`, path).Scan(&tool.Path, &tool.Name, &tool.Category, &tool.Description, &tool.Mtime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// Search returns tools whose name, category, description, or tags contain the
// query
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	pattern := "%" + query + "%"
	rows, err := idx.db.Query(`
		SELECT DISTINCT t.path, t.name, t.category, t.description
		FROM tools t
		LEFT JOIN tool_tags tt ON tt.path = t.path
		WHERE t.name LIKE ? OR t.category LIKE ? OR t.description LIKE ? OR tt.tag LIKE ?
		ORDER BY t.name
	`, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var description string
		if err := rows.Scan(&r.Path, &r.Name, &r.Category, &description); err != nil {
			return nil, err
		}
		r.MatchedText = description
		results = append(results, r)
	}
	return results, rows.Err()
}

// TagFrequency returns how many indexed tools carry each tag
func (idx *Index) TagFrequency() (map[string]int, error) {
	rows, err := idx.db.Query(`SELECT tag, COUNT(*) FROM tool_tags GROUP BY tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	freq := map[string]int{}
	for rows.Next() {
		var tag string
		var count int
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, err
		}
		freq[tag] = count
	}
	return freq, rows.Err()
}

// ToolsWithTag returns all indexed tools carrying the given normalized tag
func (idx *Index) ToolsWithTag(tag string) ([]domain.IndexedTool, error) {
	rows, err := idx.db.Query(`
		SELECT t.path, t.name, t.category, t.description, t.mtime
		FROM tools t
		JOIN tool_tags tt ON tt.path = t.path
		WHERE tt.tag = ?
		ORDER BY t.name
	`, tag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.IndexedTool
	for rows.Next() {
		var t domain.IndexedTool
		if err := rows.Scan(&t.Path, &t.Name, &t.Category, &t.Description, &t.Mtime); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(catalogPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash catalog path for unique DB name
	hash := hashCatalogPath(catalogPath)

	return filepath.Join(dataHome, "curio", hash+".db")
}

// hashCatalogPath returns a short hash of the catalog path
func hashCatalogPath(catalogPath string) string {
	h := sha256.Sum256([]byte(catalogPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and catalog path hash
func (idx *Index) updateMeta() error {
	if _, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion); err != nil {
		return err
	}
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('catalog_path_hash', ?)`,
		hashCatalogPath(idx.catalogPath))
	return err
}
