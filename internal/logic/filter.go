package logic

import (
	"strings"

	"golang.org/x/text/language"

	"stagewiki/internal/domain"
)

// Engine computes the visible subset of the glossary for a filter state.
// It is not safe for concurrent use; give each goroutine its own Engine.
type Engine struct {
	sorter *TitleSorter
}

// NewEngine creates a filter engine ordering titles for the given language
func NewEngine(tag language.Tag) *Engine {
	return &Engine{sorter: NewTitleSorter(tag)}
}

// ComputeView returns the terms matching state, sorted by title.
//
// A term is visible when it is in state.Category (if set), in
// state.Subcategory (if set) and, for non-blank search text, when the
// normalized query occurs in its normalized title, description,
// subcategory or category. The input slice is never modified.
func (e *Engine) ComputeView(all []domain.Term, state domain.FilterState) []domain.Term {
	query := ""
	if state.IsSearching() {
		query = Normalize(state.Search)
	}

	view := make([]domain.Term, 0, len(all))
	for _, term := range all {
		if !MatchesCategory(term, state.Category, state.Subcategory) {
			continue
		}
		if query != "" && !MatchesQuery(term, query) {
			continue
		}
		view = append(view, term)
	}

	e.sorter.Sort(view)
	return view
}

// SubcategoriesOf returns the distinct non-empty subcategories used by terms
// of category, in title order
func (e *Engine) SubcategoriesOf(all []domain.Term, category string) []string {
	seen := make(map[string]bool)
	var subs []string
	for _, term := range all {
		if term.Category != category || term.Subcategory == "" || seen[term.Subcategory] {
			continue
		}
		seen[term.Subcategory] = true
		subs = append(subs, term.Subcategory)
	}
	e.sorter.SortStrings(subs)
	return subs
}

// CategoriesOf returns the distinct categories present in all, collated
func (e *Engine) CategoriesOf(all []domain.Term) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, term := range all {
		if term.Category == "" || seen[term.Category] {
			continue
		}
		seen[term.Category] = true
		cats = append(cats, term.Category)
	}
	e.sorter.SortStrings(cats)
	return cats
}

// MergeCategories lists configured first, then every category that only
// occurs in all, collated
func (e *Engine) MergeCategories(configured []string, all []domain.Term) []string {
	seen := make(map[string]bool, len(configured))
	categories := make([]string, 0, len(configured))
	for _, name := range configured {
		if seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, name)
	}
	for _, name := range e.CategoriesOf(all) {
		if !seen[name] {
			categories = append(categories, name)
		}
	}
	return categories
}

// SortByTitle sorts terms in place by title
func (e *Engine) SortByTitle(terms []domain.Term) {
	e.sorter.Sort(terms)
}

// CountByCategory returns how many terms each category holds
func CountByCategory(all []domain.Term) map[string]int {
	counts := make(map[string]int)
	for _, term := range all {
		counts[term.Category]++
	}
	return counts
}

// MatchesCategory checks a term against a category and subcategory filter.
// Empty filters match everything; a subcategory without a category is ignored.
func MatchesCategory(term domain.Term, category, subcategory string) bool {
	if category == "" {
		return true
	}
	if term.Category != category {
		return false
	}
	return subcategory == "" || term.Subcategory == subcategory
}

// MatchesQuery checks whether an already normalized query occurs in any
// searchable field of the term
func MatchesQuery(term domain.Term, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	return strings.Contains(Normalize(term.Title), normalizedQuery) ||
		strings.Contains(Normalize(term.Description), normalizedQuery) ||
		strings.Contains(Normalize(term.Subcategory), normalizedQuery) ||
		strings.Contains(Normalize(term.Category), normalizedQuery)
}
