package main

import (
	"fmt"
	"os"
	"os/user"

	tea "github.com/charmbracelet/bubbletea"

	"curio/internal/adapters/editor"
	"curio/internal/adapters/filesystem"
	"curio/internal/adapters/tui"
	"curio/internal/config"
)

func main() {
	catalog := filesystem.NewCatalog(config.CatalogPath())
	themes := filesystem.NewThemeRegistry(config.ThemesPath())
	editorOpener := editor.NewOpener()

	approvedBy := "curio"
	if u, err := user.Current(); err == nil && u.Username != "" {
		approvedBy = u.Username
	}

	app := tui.NewApp(catalog, themes, editorOpener, approvedBy)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
