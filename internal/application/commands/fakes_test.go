package commands

import (
	"curio/internal/domain"
	"curio/internal/ports"
)

// fakeRegistry is an in-memory ThemeRegistry that records saves
type fakeRegistry struct {
	data      ports.RegistryData
	saveCount int
	loadErr   error
	saveErr   error
}

func (f *fakeRegistry) Load() (*ports.RegistryData, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	// Copy so commands mutate their own snapshot until Save
	copied := ports.RegistryData{
		Themes:        append([]domain.Theme(nil), f.data.Themes...),
		SuggestedTags: append([]string(nil), f.data.SuggestedTags...),
	}
	return &copied, nil
}

func (f *fakeRegistry) Save(data *ports.RegistryData) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCount++
	f.data = *data
	return nil
}

// fakeCatalog is an in-memory CatalogRepository
type fakeCatalog struct {
	tools   []domain.ToolRecord
	scanErr error
}

func (f *fakeCatalog) ScanTools() ([]domain.ToolRecord, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return append([]domain.ToolRecord(nil), f.tools...), nil
}

func (f *fakeCatalog) ListCategoryDirs() ([]string, error) {
	seen := map[string]struct{}{}
	var dirs []string
	for _, t := range f.tools {
		if _, ok := seen[t.Category]; !ok && t.Category != "" {
			seen[t.Category] = struct{}{}
			dirs = append(dirs, t.Category)
		}
	}
	return dirs, nil
}

func (f *fakeCatalog) ReadToolPage(relPath string) (string, error) {
	return "", nil
}

func (f *fakeCatalog) Root() string {
	return "/fake/catalog"
}
