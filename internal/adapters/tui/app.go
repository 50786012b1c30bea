package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"curio/internal/adapters/editor"
	"curio/internal/adapters/tui/views"
	"curio/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewThemes
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state   ViewState
	browser *views.BrowserModel
	themes  *views.ThemesModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. approvedBy is the reviewer name
// recorded on themes approved from the theme view.
func NewApp(catalog ports.CatalogRepository, registry ports.ThemeRegistry, ed *editor.Opener, approvedBy string) *App {
	return &App{
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(catalog),
		themes:  views.NewThemesModel(registry, approvedBy),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.themes.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToThemesMsg:
		a.state = ViewThemes
		return a, a.themes.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewThemes:
		_, cmd = a.themes.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewThemes:
		return a.themes.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
