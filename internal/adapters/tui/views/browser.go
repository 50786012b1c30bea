package views

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"curio/internal/adapters/tui/styles"
	"curio/internal/domain"
	"curio/internal/ports"
)

// BrowserKeyMap defines key bindings for the catalog browser
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Themes key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy repo URL"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit page"),
	),
	Themes: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "themes"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserRow is one visible line in the browser: either a category header or
// a tool under an expanded category.
type browserRow struct {
	category string
	tool     *domain.ToolRecord // nil for category headers
}

// BrowserModel is the model for the catalog browser view
type BrowserModel struct {
	ViewState

	catalog  ports.CatalogRepository
	tools    map[string][]domain.ToolRecord // category -> tools
	order    []string                       // category display order
	expanded map[string]bool
	rows     []browserRow
	cursor   int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(catalog ports.CatalogRepository) *BrowserModel {
	return &BrowserModel{
		catalog:  catalog,
		expanded: map[string]bool{},
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadCatalog
}

func (m *BrowserModel) loadCatalog() tea.Msg {
	tools, err := m.catalog.ScanTools()
	if err != nil {
		return errMsg{err}
	}
	return catalogLoadedMsg{tools}
}

type catalogLoadedMsg struct {
	tools []domain.ToolRecord
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		m.groupTools(msg.tools)
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case copiedMsg:
		m.SetMessage(fmt.Sprintf("Copied repository URL for %s", msg.name), false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if row := m.selectedRow(); row != nil {
				if row.tool == nil && m.expanded[row.category] {
					m.expanded[row.category] = false
					m.refreshRows()
				} else if row.tool != nil {
					// Jump to the category header
					for i := m.cursor; i >= 0; i-- {
						if m.rows[i].tool == nil {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if row := m.selectedRow(); row != nil && row.tool == nil {
				m.expanded[row.category] = !m.expanded[row.category]
				m.refreshRows()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if row := m.selectedRow(); row != nil && row.tool != nil {
				return m, m.copyRepoURL(row.tool)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if row := m.selectedRow(); row != nil && row.tool != nil {
				path := filepath.Join(m.catalog.Root(), row.tool.SourceFile)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Themes):
			return m, func() tea.Msg {
				return SwitchToThemesMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) copyRepoURL(tool *domain.ToolRecord) tea.Cmd {
	return func() tea.Msg {
		if tool.RepositoryURL == "" {
			return errMsg{fmt.Errorf("%s has no repository URL", tool.Name)}
		}
		if err := clipboard.WriteAll(tool.RepositoryURL); err != nil {
			return errMsg{fmt.Errorf("copy failed: %w", err)}
		}
		return copiedMsg{tool.Name}
	}
}

type copiedMsg struct {
	name string
}

func (m *BrowserModel) groupTools(tools []domain.ToolRecord) {
	m.tools = map[string][]domain.ToolRecord{}
	for _, t := range tools {
		m.tools[t.Category] = append(m.tools[t.Category], t)
	}
	m.order = m.order[:0]
	for category := range m.tools {
		m.order = append(m.order, category)
		domain.SortTools(m.tools[category])
	}
	sort.Strings(m.order)
}

func (m *BrowserModel) refreshRows() {
	m.rows = m.rows[:0]
	for _, category := range m.order {
		m.rows = append(m.rows, browserRow{category: category})
		if m.expanded[category] {
			tools := m.tools[category]
			for i := range tools {
				m.rows = append(m.rows, browserRow{category: category, tool: &tools[i]})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BrowserModel) selectedRow() *browserRow {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.tools == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Curio"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Tool Catalog Browser"))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.cursor))
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

func (m *BrowserModel) renderRow(row browserRow, selected bool) string {
	if row.tool == nil {
		prefix := styles.TreeCollapsed
		if m.expanded[row.category] {
			prefix = styles.TreeExpanded
		}
		text := fmt.Sprintf("%s (%d)", row.category, len(m.tools[row.category]))
		if selected {
			return styles.TreeBranch.Render(prefix) + styles.Selected.Render(text)
		}
		return styles.TreeBranch.Render(prefix) + styles.Category.Render(text)
	}

	text := fmt.Sprintf("%s  %s", row.tool.Name, row.tool.Description)
	line := "  " + styles.TreeLeaf
	if selected {
		return line + styles.Selected.Render(text)
	}
	if len(row.tool.Tags) > 0 {
		text += "  " + styles.Tag.Render(strings.Join(row.tool.NormalizedTags(), " "))
	}
	return line + styles.Tool.Render(text)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"c", "copy repo URL"},
		{"e", "edit page"},
		{"t", "themes"},
		{"?", "help"},
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

// Reload reloads the catalog from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadCatalog
}
