package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"stagewiki/internal/domain"
	"stagewiki/internal/i18n"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	Loading       bool
	SourcesTotal  int
	SourcesDone   int
	SourcesFailed int

	Terms         []domain.Term // visible terms
	SelectedIndex int
	Filter        domain.FilterState
	Categories    []string
	Counts        map[string]int
	Subcategories []string
	Colors        map[string]string
	Accent        string
	Compact       bool // cards without descriptions

	Searching     bool   // search input has focus
	SearchInput   string // rendered search input
	StatusMessage string
	ShowHelp      bool
	HelpView      string // rendered short help

	Messages *i18n.Messages
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cards      *CardRenderer
	categories *CategoryRenderer
	list       viewport.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cards:      NewCardRenderer(styles),
		categories: NewCategoryRenderer(styles),
		list:       viewport.New(0, 0),
	}
}

// Render produces the complete view. It redraws everything from state; the
// only thing kept between frames is the scroll position of the card list.
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	inner := width - 4 // Main padding

	var header []string
	header = append(header, r.renderTitleLine(state, inner))
	header = append(header, r.categories.RenderCategoryBar(state.Categories, state.Counts, state.Filter, state.Messages, inner))
	if subs := r.categories.RenderSubcategoryBar(state.Subcategories, state.Filter, state.Messages, inner); subs != "" {
		header = append(header, subs)
	}
	if line := r.renderSearchLine(state); line != "" {
		header = append(header, line)
	}
	top := strings.Join(header, "\n") + "\n"

	footer := r.renderFooter(state)

	// Main padding takes two lines, plus a blank line under the header
	listHeight := height - 2 - lipgloss.Height(top) - 1 - lipgloss.Height(footer)
	if listHeight < 3 {
		listHeight = 3
	}

	content := &strings.Builder{}
	content.WriteString(top)
	content.WriteString("\n")
	content.WriteString(r.renderList(state, inner, listHeight))
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(height).Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	title := state.Title
	if title == "" {
		title = "stagewiki"
	}
	logo := r.styles.Title.Render(Sanitize(title))

	right := ""
	switch {
	case state.Loading:
		right = r.styles.Dim.Render(fmt.Sprintf("%s %d/%d", state.Messages.Loading(), state.SourcesDone, state.SourcesTotal))
	default:
		right = r.styles.Status.Render(state.Messages.Count(len(state.Terms)))
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	prompt := r.styles.Search.Render(state.Messages.SearchPrompt() + ": ")
	if state.Searching {
		return prompt + state.SearchInput
	}
	return r.styles.Status.Render(Sanitize(state.Messages.Status(state.Filter, len(state.Terms))))
}

func (r *Renderer) renderList(state ViewState, width, height int) string {
	if state.Loading && len(state.Terms) == 0 {
		return r.styles.Dim.Render(state.Messages.Loading()) + strings.Repeat("\n", height-1)
	}
	if len(state.Terms) == 0 {
		return r.styles.Dim.Render(state.Messages.NoResults()) + strings.Repeat("\n", height-1)
	}

	var b strings.Builder
	starts := make([]int, len(state.Terms))
	ends := make([]int, len(state.Terms))
	line := 0
	for i, term := range state.Terms {
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}
		color := CategoryColor(state.Colors, term.Category, state.Accent)
		card := r.cards.RenderCard(term, color, i == state.SelectedIndex, !state.Compact, width)
		b.WriteString(card)

		starts[i] = line
		line += lipgloss.Height(card)
		ends[i] = line
	}

	// The last line is reserved for the scroll indicator
	r.list.Width = width
	r.list.Height = height - 1
	r.list.SetContent(b.String())

	// Keep the selected card in view
	if sel := state.SelectedIndex; sel >= 0 && sel < len(state.Terms) {
		switch {
		case starts[sel] < r.list.YOffset:
			r.list.SetYOffset(starts[sel])
		case ends[sel] > r.list.YOffset+r.list.Height:
			r.list.SetYOffset(ends[sel] - r.list.Height)
		}
	}

	indicator := ""
	if !r.list.AtBottom() {
		indicator = r.styles.Scroll.Render("↓ more below ↓")
	}
	return r.list.View() + "\n" + indicator
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.SourcesFailed > 0 && !state.Loading {
		lines = append(lines, r.styles.Warning.Render(state.Messages.LoadFailures(state.SourcesFailed, state.SourcesTotal)))
	}
	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}
	if state.ShowHelp && state.HelpView != "" {
		lines = append(lines, state.HelpView)
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}
