package sqlite

import (
	"database/sql"

	"curio/internal/domain"
	"curio/internal/ports"
)

// BeginTx starts a transaction for atomic cache updates
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertTool inserts or updates a tool row
func (t *indexTx) UpsertTool(tool *domain.IndexedTool) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO tools (path, name, category, description, mtime)
		VALUES (?, ?, ?, ?, ?)
	`, tool.Path, tool.Name, tool.Category, tool.Description, tool.Mtime)
	return err
}

// DeleteTool removes a tool and its tags by path
func (t *indexTx) DeleteTool(path string) error {
	if _, err := t.tx.Exec(`DELETE FROM tool_tags WHERE path = ?`, path); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM tools WHERE path = ?`, path)
	return err
}

// ReplaceTags rewrites the tag set for a tool
func (t *indexTx) ReplaceTags(path string, tags []string) error {
	if _, err := t.tx.Exec(`DELETE FROM tool_tags WHERE path = ?`, path); err != nil {
		return err
	}
	for _, tag := range tags {
		if _, err := t.tx.Exec(`
			INSERT OR REPLACE INTO tool_tags (path, tag) VALUES (?, ?)
		`, path, tag); err != nil {
			return err
		}
	}
	return nil
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
