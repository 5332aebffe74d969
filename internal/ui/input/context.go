package input

import (
	"stagewiki/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the selected position in the view
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of visible terms
func (c *ModelContext) TotalItems() int {
	return len(c.State.View)
}

// CategoryCount returns the number of entries in the category bar
func (c *ModelContext) CategoryCount() int {
	return len(c.State.Categories)
}

// SearchText returns the active search text
func (c *ModelContext) SearchText() string {
	return c.State.Filter.Search
}

// IsFiltered reports whether any filter is active
func (c *ModelContext) IsFiltered() bool {
	return !c.State.Filter.IsEmpty()
}

// CurrentSubcategory returns the subcategory of the selected term
func (c *ModelContext) CurrentSubcategory() string {
	term, ok := c.State.CurrentTerm()
	if !ok {
		return ""
	}
	return term.Subcategory
}
