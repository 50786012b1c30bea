package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"curio/internal/adapters/tui/styles"
	"curio/internal/application/commands"
	"curio/internal/domain"
	"curio/internal/ports"
)

// ThemesKeyMap defines key bindings for the theme review view
type ThemesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Approve key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var ThemesKeys = ThemesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "t"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ThemesModel is the model for the theme review view
type ThemesModel struct {
	ViewState

	registry   ports.ThemeRegistry
	approvedBy string
	themes     []domain.Theme
	cursor     int
}

// NewThemesModel creates a new theme review model. approvedBy is recorded on
// themes approved from this view.
func NewThemesModel(registry ports.ThemeRegistry, approvedBy string) *ThemesModel {
	return &ThemesModel{
		registry:   registry,
		approvedBy: approvedBy,
	}
}

// Init initializes the theme review view
func (m *ThemesModel) Init() tea.Cmd {
	return m.loadThemes
}

func (m *ThemesModel) loadThemes() tea.Msg {
	data, err := m.registry.Load()
	if err != nil {
		return errMsg{err}
	}
	domain.SortThemes(data.Themes)
	return themesLoadedMsg{data.Themes}
}

type themesLoadedMsg struct {
	themes []domain.Theme
}

type themeApprovedMsg struct {
	message string
}

// Update handles messages for the theme review view
func (m *ThemesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case themesLoadedMsg:
		m.themes = msg.themes
		if m.cursor >= len(m.themes) {
			m.cursor = len(m.themes) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case themeApprovedMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadThemes

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ThemesKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ThemesKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ThemesKeys.Down):
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ThemesKeys.Approve):
			if m.cursor < len(m.themes) {
				return m, m.approveTheme(m.themes[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, ThemesKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

func (m *ThemesModel) approveTheme(themeID string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewApproveThemeCommand(m.registry, themeID, m.approvedBy).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return themeApprovedMsg{result.Message}
	}
}

// View renders the theme review view
func (m *ThemesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Themes"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Review and approve discovered themes"))
	b.WriteString("\n\n")

	if len(m.themes) == 0 {
		b.WriteString(styles.MutedText.Render("No themes in the registry."))
		b.WriteString("\n")
	}

	for i, theme := range m.themes {
		b.WriteString(m.renderTheme(theme, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *ThemesModel) renderTheme(theme domain.Theme, selected bool) string {
	status := styles.StatusReview.Render(string(theme.Status))
	if theme.Status == domain.StatusActive {
		status = styles.StatusActive.Render(string(theme.Status))
	}

	text := fmt.Sprintf("%s  tools=%d", theme.Name, theme.Metadata.ToolCount)
	if theme.Metadata.ApprovedBy != "" {
		text += "  approved by " + theme.Metadata.ApprovedBy
	}

	if selected {
		return styles.Selected.Render(text) + "  " + status
	}
	return text + "  " + status
}

func (m *ThemesModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"a", "approve"},
		{"esc", "back"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload reloads the registry from disk
func (m *ThemesModel) Reload() tea.Cmd {
	return m.loadThemes
}
