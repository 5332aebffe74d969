package state

import (
	"stagewiki/internal/domain"
)

// AppState contains all the browser state
type AppState struct {
	// Glossary data
	Terms      []domain.Term // full collection in load order
	Categories []string      // category bar, in display order
	Counts     map[string]int

	// Filter and the view it produces
	Filter        domain.FilterState
	View          []domain.Term // visible terms, sorted by title
	Subcategories []string      // subcategory controls for Filter.Category

	// Selection state
	SelectedIndex int // index into View

	// Loading state
	Loading        bool
	CatalogApplied bool // set once the loaded catalog replaced Terms
	SourcesTotal   int
	SourcesLoaded  int
	SourcesFailed  int

	// UI state
	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Counts:  make(map[string]int),
		Loading: true,
	}
}

// SetView replaces the visible terms and resets the selection
func (s *AppState) SetView(view []domain.Term, subcategories []string) {
	s.View = view
	s.Subcategories = subcategories
	s.SelectedIndex = 0
}

// CurrentTerm returns the selected term, if any
func (s *AppState) CurrentTerm() (domain.Term, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.View) {
		return domain.Term{}, false
	}
	return s.View[s.SelectedIndex], true
}

// MoveSelection moves the selection by delta, clamped to the view
func (s *AppState) MoveSelection(delta int) {
	s.SetSelection(s.SelectedIndex + delta)
}

// SetSelection selects index, clamped to the view
func (s *AppState) SetSelection(index int) {
	if index >= len(s.View) {
		index = len(s.View) - 1
	}
	if index < 0 {
		index = 0
	}
	s.SelectedIndex = index
}

// CategoryIndex returns the position of the selected category in the
// category bar, or -1 when all categories are shown
func (s *AppState) CategoryIndex() int {
	return indexOf(s.Categories, s.Filter.Category)
}

// SubcategoryIndex returns the position of the selected subcategory, or -1
// for "All"
func (s *AppState) SubcategoryIndex() int {
	return indexOf(s.Subcategories, s.Filter.Subcategory)
}

// LoadProgress returns how many sources have finished, successfully or not
func (s *AppState) LoadProgress() int {
	return s.SourcesLoaded + s.SourcesFailed
}

func indexOf(values []string, value string) int {
	if value == "" {
		return -1
	}
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
