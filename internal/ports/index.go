package ports

import "curio/internal/domain"

// CatalogIndex provides cached access to the tool catalog for search and tag
// queries. All query operations should be O(1) or O(log n) via database
// indexes.
type CatalogIndex interface {
	// Lifecycle
	Open(catalogPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Tool queries
	GetTool(path string) (*domain.IndexedTool, error)
	Search(query string) ([]domain.SearchResult, error)

	// Tag queries
	TagFrequency() (map[string]int, error)
	ToolsWithTag(tag string) ([]domain.IndexedTool, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic cache updates
type IndexTx interface {
	UpsertTool(tool *domain.IndexedTool) error
	DeleteTool(path string) error

	ReplaceTags(path string, tags []string) error

	Commit() error
	Rollback() error
}
