package loader

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"stagewiki/internal/domain"
)

// ErrMalformed is returned for source content that is not valid JSON
var ErrMalformed = errors.New("malformed source")

// Parse decodes one source document. Entries live in the "terms" array as
// objects with t (title), c (category), s (optional subcategory) and d
// (description). A missing or non-array "terms" field yields no terms and no
// error; entries that are not objects are skipped.
func Parse(source string, data []byte) ([]domain.Term, error) {
	terms, _, err := parseTerms(source, data)
	return terms, err
}

func parseTerms(source string, data []byte) ([]domain.Term, bool, error) {
	if !gjson.ValidBytes(data) {
		return nil, false, fmt.Errorf("%w: %s is not valid JSON", ErrMalformed, source)
	}

	list := gjson.GetBytes(data, "terms")
	if !list.IsArray() {
		return nil, false, nil
	}

	var terms []domain.Term
	list.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		terms = append(terms, domain.Term{
			Title:       field(entry, "t"),
			Category:    field(entry, "c"),
			Subcategory: field(entry, "s"),
			Description: field(entry, "d"),
			Source:      source,
		})
		return true
	})
	return terms, true, nil
}

// field returns a member as text; missing and null members are empty
func field(entry gjson.Result, name string) string {
	v := entry.Get(name)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}
