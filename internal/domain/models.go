package domain

import "strings"

// Term represents one glossary entry
type Term struct {
	Title       string
	Category    string
	Subcategory string // "" if the term has no subcategory
	Description string
	Source      string // data source the term was loaded from
}

// HasSubcategory reports whether the term belongs to a subcategory
func (t Term) HasSubcategory() bool {
	return t.Subcategory != ""
}

// FilterState holds the user's current category, subcategory and search
// selection. The zero value shows every term.
type FilterState struct {
	Category    string // "" means no category filter
	Subcategory string // "" means no subcategory filter; ignored without Category
	Search      string
}

// IsSearching reports whether the search text contains anything but whitespace
func (s FilterState) IsSearching() bool {
	return strings.TrimSpace(s.Search) != ""
}

// IsEmpty reports whether no filter of any kind is active
func (s FilterState) IsEmpty() bool {
	return s.Category == "" && s.Subcategory == "" && !s.IsSearching()
}

// SelectCategory switches to a category ("" for all) and clears the
// subcategory and search text
func (s *FilterState) SelectCategory(category string) {
	s.Category = category
	s.Subcategory = ""
	s.Search = ""
}

// SelectSubcategory narrows to a subcategory of the given category. An empty
// subcategory selects every term of the category.
func (s *FilterState) SelectSubcategory(subcategory, category string) {
	s.Category = category
	s.Subcategory = subcategory
	if category == "" {
		s.Subcategory = ""
	}
	s.Search = ""
}

// SetSearch replaces the search text. Clearing the search while a category
// is selected drops the subcategory so the category-only view comes back.
func (s *FilterState) SetSearch(text string) {
	wasSearching := s.IsSearching()
	s.Search = text
	if wasSearching && !s.IsSearching() && s.Category != "" {
		s.Subcategory = ""
	}
}
