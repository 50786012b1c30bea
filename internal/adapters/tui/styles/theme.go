package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List styles
	Category = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")). // Blue
			Bold(true)

	Tool = lipgloss.NewStyle()

	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary)

	// Theme status
	StatusActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusReview = lipgloss.NewStyle().
			Foreground(Warning)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Section label
	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
