package views

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent colors cards of unknown categories
const DefaultAccent = "#38bdf8"

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Search      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Pill        lipgloss.Style
	ActivePill  lipgloss.Style
	CardTitle   lipgloss.Style
	Badge       lipgloss.Style
	SubBadge    lipgloss.Style
	Description lipgloss.Style
	Warning     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("39")).
			Padding(0, 1),
		Pill: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
		ActivePill: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("39")).
			Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Padding(0, 1),
		SubBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("240")).Padding(0, 1),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// CategoryColor returns the configured color of a category, or accent for
// categories without one
func CategoryColor(colors map[string]string, category, accent string) lipgloss.Color {
	if c, ok := colors[category]; ok && c != "" {
		return lipgloss.Color(c)
	}
	if accent == "" {
		accent = DefaultAccent
	}
	return lipgloss.Color(accent)
}
