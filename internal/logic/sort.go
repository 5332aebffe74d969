package logic

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stagewiki/internal/domain"
)

// TitleSorter orders terms and labels with a locale-aware collator
type TitleSorter struct {
	collator *collate.Collator
}

// NewTitleSorter creates a sorter for the given language
func NewTitleSorter(tag language.Tag) *TitleSorter {
	return &TitleSorter{collator: collate.New(tag)}
}

// Sort sorts terms by title. Terms whose titles collate equal keep their
// relative order.
func (s *TitleSorter) Sort(terms []domain.Term) {
	sort.SliceStable(terms, func(i, j int) bool {
		return s.collator.CompareString(terms[i].Title, terms[j].Title) < 0
	})
}

// SortStrings sorts labels such as category or subcategory names
func (s *TitleSorter) SortStrings(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return s.collator.CompareString(values[i], values[j]) < 0
	})
}

// Less reports whether title a sorts before title b
func (s *TitleSorter) Less(a, b string) bool {
	return s.collator.CompareString(a, b) < 0
}
