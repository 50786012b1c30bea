package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestIndex(t *testing.T, catalog string) *Index {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	idx := NewIndex()
	if err := idx.Open(catalog); err != nil {
		t.Fatalf("open index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func writeTestPage(t *testing.T, root, relPath, name string, tags string) {
	t.Helper()
	content := "---\n" +
		"tool_name: " + name + "\n" +
		"tags: " + tags + "\n" +
		"---\n\n# " + name + "\n\nDescribes " + name + ".\n"
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSyncFullAndQueries(t *testing.T) {
	catalog := t.TempDir()
	writeTestPage(t, catalog, "quality/linty.md", "linty", "[linting, go]")
	writeTestPage(t, catalog, "automation/pipeliner.md", "pipeliner", "[ci, go]")
	// Ineligible files must not be indexed
	writeTestPage(t, catalog, "quality/README.md", "readme", "[x]")

	idx := newTestIndex(t, catalog)

	stats, err := idx.SyncFull()
	if err != nil {
		t.Fatalf("sync full: %v", err)
	}
	if stats.ToolsAdded != 2 {
		t.Errorf("tools added = %d, want 2", stats.ToolsAdded)
	}

	tool, err := idx.GetTool(filepath.Join("quality", "linty.md"))
	if err != nil {
		t.Fatalf("get tool: %v", err)
	}
	if tool == nil || tool.Name != "linty" || tool.Category != "quality" {
		t.Errorf("tool = %+v", tool)
	}

	freq, err := idx.TagFrequency()
	if err != nil {
		t.Fatalf("tag frequency: %v", err)
	}
	if freq["go"] != 2 || freq["linting"] != 1 {
		t.Errorf("frequency = %v", freq)
	}

	withGo, err := idx.ToolsWithTag("go")
	if err != nil {
		t.Fatalf("tools with tag: %v", err)
	}
	if len(withGo) != 2 {
		t.Errorf("tools with tag go = %+v, want 2", withGo)
	}

	results, err := idx.Search("lint")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "linty" {
		t.Errorf("search results = %+v", results)
	}
}

func TestSyncIncrementalAddAndDelete(t *testing.T) {
	catalog := t.TempDir()
	writeTestPage(t, catalog, "quality/linty.md", "linty", "[linting]")

	idx := newTestIndex(t, catalog)
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("sync full: %v", err)
	}

	// Add a page and remove the original: incremental picks up both
	writeTestPage(t, catalog, "automation/fresh.md", "fresh", "[ci]")
	if err := os.Remove(filepath.Join(catalog, "quality", "linty.md")); err != nil {
		t.Fatal(err)
	}

	stats, err := idx.SyncIncremental()
	if err != nil {
		t.Fatalf("sync incremental: %v", err)
	}
	if stats.ToolsAdded != 1 {
		t.Errorf("tools added = %d, want 1", stats.ToolsAdded)
	}
	if stats.ToolsDeleted != 1 {
		t.Errorf("tools deleted = %d, want 1", stats.ToolsDeleted)
	}

	gone, err := idx.GetTool(filepath.Join("quality", "linty.md"))
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Errorf("deleted tool still indexed: %+v", gone)
	}
}

func TestNeedsFullRebuild(t *testing.T) {
	catalog := t.TempDir()
	idx := newTestIndex(t, catalog)

	if idx.NeedsFullRebuild() {
		t.Error("freshly opened index should not need a rebuild")
	}
}
