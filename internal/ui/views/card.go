package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stagewiki/internal/domain"
)

// CardRenderer handles rendering of term cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders one term as a card of the given width. The left
// border carries the category color.
func (c *CardRenderer) RenderCard(term domain.Term, color lipgloss.Color, isSelected, withDescription bool, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 2 // border and padding

	title := Sanitize(term.Title)
	titleStyle := c.styles.CardTitle
	if isSelected {
		titleStyle = c.styles.Highlight
		title = "▸ " + title
	}

	badge := c.styles.Badge.Foreground(color).Render(Sanitize(term.Category))
	titleWidth := inner - lipgloss.Width(badge) - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	header := titleStyle.MaxWidth(titleWidth).Render(title)
	if padding := inner - lipgloss.Width(header) - lipgloss.Width(badge); padding > 0 {
		header += strings.Repeat(" ", padding)
	}
	header += badge

	lines := []string{header}
	if term.HasSubcategory() {
		lines = append(lines, c.styles.SubBadge.Render("#"+Sanitize(term.Subcategory)))
	}
	if desc := Sanitize(term.Description); withDescription && desc != "" {
		lines = append(lines, c.styles.Description.Width(inner).Render(desc))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Width(width - 1)
	if isSelected {
		card = card.BorderStyle(lipgloss.DoubleBorder())
	}
	return card.Render(strings.Join(lines, "\n"))
}
