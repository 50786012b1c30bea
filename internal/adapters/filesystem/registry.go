package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"curio/internal/application"
	"curio/internal/domain"
	"curio/internal/ports"
)

// ThemeRegistry implements ports.ThemeRegistry over a single JSON file.
// Writes are atomic: the new content lands in a temp file first and is
// renamed over the registry, so a failed run never leaves a half-written
// registry behind.
type ThemeRegistry struct {
	path string
}

// Ensure ThemeRegistry implements the port
var _ ports.ThemeRegistry = (*ThemeRegistry)(nil)

// NewThemeRegistry creates a theme registry backed by the given JSON file
func NewThemeRegistry(path string) *ThemeRegistry {
	return &ThemeRegistry{path: expandHome(path)}
}

// Load reads the full registry into memory
func (r *ThemeRegistry) Load() (*ports.RegistryData, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &application.RegistryError{Path: r.path, Reason: "does not exist"}
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var data ports.RegistryData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, &application.RegistryError{Path: r.path, Reason: err.Error()}
	}
	return &data, nil
}

// Save atomically rewrites the registry file
func (r *ThemeRegistry) Save(data *ports.RegistryData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	content = append(content, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".themes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp registry: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush registry: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace registry: %w", err)
	}
	return nil
}

// CategoryRegistry implements ports.CategoryRegistry over a read-only JSON
// file
type CategoryRegistry struct {
	path string
}

// Ensure CategoryRegistry implements the port
var _ ports.CategoryRegistry = (*CategoryRegistry)(nil)

// NewCategoryRegistry creates a category registry backed by the given file
func NewCategoryRegistry(path string) *CategoryRegistry {
	return &CategoryRegistry{path: expandHome(path)}
}

// Categories reads the full category list
func (r *CategoryRegistry) Categories() ([]domain.Category, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &application.RegistryError{Path: r.path, Reason: "does not exist"}
		}
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	var data struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, &application.RegistryError{Path: r.path, Reason: err.Error()}
	}
	return data.Categories, nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
