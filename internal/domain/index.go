package domain

import "time"

// IndexedTool is a cached catalog entry in the search index
type IndexedTool struct {
	Path        string // Relative path from catalog root (primary key)
	Name        string
	Category    string
	Description string
	Mtime       int64 // Unix timestamp for incremental sync
}

// ToolTag links an indexed tool to one of its normalized tags
type ToolTag struct {
	Path string // Tool page path
	Tag  string // Normalized tag
}

// SearchResult is one match from an index search
type SearchResult struct {
	Name        string
	Category    string
	Path        string
	MatchedText string
}

// SyncStats holds statistics from an index sync operation
type SyncStats struct {
	ToolsAdded   int
	ToolsUpdated int
	ToolsDeleted int
	TagsAdded    int
	FilesScanned int
	Duration     time.Duration
}
