package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"stagewiki/internal/domain"
	"stagewiki/internal/ui/views"
)

// errNoProgram is returned when the pager is used without a running program
var errNoProgram = errors.New("program not set")

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new PagerOps instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager hands the terminal to ov until the user leaves it
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// ov needs a moment to give the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderTermDetail renders a term for the pager. Every field passes through
// views.Sanitize before styling.
func RenderTermDetail(term domain.Term, color lipgloss.Color) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	badgeStyle := lipgloss.NewStyle().Foreground(color)
	bodyStyle := lipgloss.NewStyle().Width(76)

	var b strings.Builder
	b.WriteString(titleStyle.Render(views.Sanitize(term.Title)))
	b.WriteString("\n")

	path := badgeStyle.Render(views.Sanitize(term.Category))
	if term.HasSubcategory() {
		path += labelStyle.Render(" → ") + badgeStyle.Render(views.Sanitize(term.Subcategory))
	}
	b.WriteString(path)
	b.WriteString("\n\n")

	if desc := views.Sanitize(term.Description); desc != "" {
		b.WriteString(bodyStyle.Render(desc))
		b.WriteString("\n")
	}

	if term.Source != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(views.Sanitize(term.Source)))
		b.WriteString("\n")
	}
	return b.String()
}
