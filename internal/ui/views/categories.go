package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stagewiki/internal/domain"
	"stagewiki/internal/i18n"
)

// CategoryRenderer renders the category and subcategory bars
type CategoryRenderer struct {
	styles *Styles
}

// NewCategoryRenderer creates a new category bar renderer
func NewCategoryRenderer(styles *Styles) *CategoryRenderer {
	return &CategoryRenderer{
		styles: styles,
	}
}

// RenderCategoryBar renders "0 All" followed by the numbered categories with
// their term counts, wrapped to width
func (c *CategoryRenderer) RenderCategoryBar(categories []string, counts map[string]int, filter domain.FilterState,
	msgs *i18n.Messages, width int) string {

	total := 0
	for _, n := range counts {
		total += n
	}

	tabs := []string{c.tab(fmt.Sprintf("0 %s (%d)", msgs.All(), total), filter.Category == "")}
	for i, cat := range categories {
		label := fmt.Sprintf("%s (%d)", Sanitize(cat), counts[cat])
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		tabs = append(tabs, c.tab(label, filter.Category == cat))
	}
	return wrap(tabs, width)
}

// RenderSubcategoryBar renders the subcategory controls of the selected
// category. It is empty when no category is selected or it has none.
func (c *CategoryRenderer) RenderSubcategoryBar(subcategories []string, filter domain.FilterState,
	msgs *i18n.Messages, width int) string {

	if filter.Category == "" || len(subcategories) == 0 {
		return ""
	}

	pills := []string{
		c.styles.Dim.Render(msgs.Subcategories() + ":"),
		c.pill(msgs.All(), filter.Subcategory == ""),
	}
	for _, sub := range subcategories {
		pills = append(pills, c.pill(Sanitize(sub), filter.Subcategory == sub))
	}
	return wrap(pills, width)
}

func (c *CategoryRenderer) tab(label string, active bool) string {
	if active {
		return c.styles.ActiveTab.Render(label)
	}
	return c.styles.Tab.Render(label)
}

func (c *CategoryRenderer) pill(label string, active bool) string {
	if active {
		return c.styles.ActivePill.Render(label)
	}
	return c.styles.Pill.Render(label)
}

// wrap joins items with a space, starting a new line before an item that
// would overflow width
func wrap(items []string, width int) string {
	if width <= 0 {
		return strings.Join(items, " ")
	}

	var lines []string
	line := ""
	for _, item := range items {
		switch {
		case line == "":
			line = item
		case lipgloss.Width(line)+1+lipgloss.Width(item) > width:
			lines = append(lines, line)
			line = item
		default:
			line += " " + item
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
