package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Filter actions

// SelectCategoryAction selects a category by position in the category bar.
// Index -1 selects all categories.
type SelectCategoryAction struct {
	Index int
}

func (a SelectCategoryAction) Type() string { return "select_category" }

// CycleCategoryAction moves through the category bar, wrapping through "All"
type CycleCategoryAction struct {
	Delta int
}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

// CycleSubcategoryAction moves through the subcategories of the selected
// category, wrapping through "All"
type CycleSubcategoryAction struct {
	Delta int
}

func (a CycleSubcategoryAction) Type() string { return "cycle_subcategory" }

// FilterBySubcategoryAction narrows to the selected term's subcategory
type FilterBySubcategoryAction struct{}

func (a FilterBySubcategoryAction) Type() string { return "filter_by_subcategory" }

// ClearFiltersAction drops the search text, then the subcategory, then the
// category
type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type OpenTermAction struct{}

func (a OpenTermAction) Type() string { return "open_term" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
