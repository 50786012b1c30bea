package commands

import (
	"context"

	"curio/internal/domain"
	"curio/internal/ports"
)

// SyncCommand refreshes the catalog search index
type SyncCommand struct {
	index ports.CatalogIndex
	Full  bool // force a full rebuild
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(index ports.CatalogIndex, full bool) *SyncCommand {
	return &SyncCommand{index: index, Full: full}
}

// Execute runs the sync. A full rebuild is performed when requested or when
// the index reports it is stale (schema change, catalog moved).
func (c *SyncCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	if c.Full || c.index.NeedsFullRebuild() {
		return c.index.SyncFull()
	}
	return c.index.SyncIncremental()
}
