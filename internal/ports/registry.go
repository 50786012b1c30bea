package ports

import "curio/internal/domain"

// ThemeRegistry owns the persisted theme registry file. Mutations rewrite the
// whole file atomically; there is no partial flush.
type ThemeRegistry interface {
	// Load reads the full registry into memory
	Load() (*RegistryData, error)

	// Save atomically rewrites the registry file
	Save(data *RegistryData) error
}

// RegistryData is the on-disk shape of the theme registry
type RegistryData struct {
	Themes        []domain.Theme `json:"themes"`
	SuggestedTags []string       `json:"suggested_tags"`
}

// FindTheme returns a pointer into Themes for the given id, or nil
func (d *RegistryData) FindTheme(id string) *domain.Theme {
	for i := range d.Themes {
		if d.Themes[i].ID == id {
			return &d.Themes[i]
		}
	}
	return nil
}

// CategoryRegistry provides read-only access to the category registry
type CategoryRegistry interface {
	// Categories reads the full category list
	Categories() ([]domain.Category, error)
}
