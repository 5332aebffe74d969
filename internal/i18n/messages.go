// Package i18n holds the user-facing strings of stagewiki in English and
// German, with plural-aware result counts.
package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"stagewiki/internal/domain"
)

// Message keys
const (
	keyCount         = "%d entries found"
	keyNoResults     = "No entries found. Try another term or filter."
	keyAll           = "All"
	keySubcategories = "Subcategories"
	keyFilterBy      = "Filter by '%s'"
	keySearch        = "Search"
	keySearchLabel   = "Search: %q"
	keyIn            = "in %s"
	keyByCategory    = "Filtered by category: %s (%d)"
	keyBySub         = "Filtered by: %s → %s (%d)"
	keyLoading       = "Loading glossary…"
	keyFailed        = "%d of %d sources could not be loaded"
)

// Supported lists the languages with a translation, default first
var Supported = []language.Tag{language.English, language.German}

var (
	matcher = language.NewMatcher(Supported)
	texts   = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.English, keyCount, plural.Selectf(1, "%d",
		"=1", "%d entry found",
		"other", "%d entries found"))
	set(language.German, keyCount, plural.Selectf(1, "%d",
		"=1", "%d Eintrag gefunden",
		"other", "%d Einträge gefunden"))

	set(language.English, keyFailed, catalog.String(keyFailed))
	set(language.German, keyFailed, plural.Selectf(1, "%d",
		"=1", "%d von %d Quellen konnte nicht geladen werden",
		"other", "%d von %d Quellen konnten nicht geladen werden"))

	german := map[string]string{
		keyNoResults:     "Keine Einträge gefunden. Versuchen Sie einen anderen Begriff oder Filter.",
		keyAll:           "Alle",
		keySubcategories: "Unterkategorien",
		keyFilterBy:      "Nach '%s' filtern",
		keySearch:        "Suche",
		keySearchLabel:   "Suche: %q",
		keyIn:            "in %s",
		keyByCategory:    "Gefiltert nach Kategorie: %s (%d)",
		keyBySub:         "Gefiltert nach: %s → %s (%d)",
		keyLoading:       "Glossar wird geladen…",
	}
	for key, text := range german {
		set(language.English, key, catalog.String(key))
		set(language.German, key, catalog.String(text))
	}
	return b
}

// Messages formats strings for one language
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the messages for the supported language closest to tag
func New(tag language.Tag) *Messages {
	_, index, _ := matcher.Match(tag)
	supported := Supported[index]
	return &Messages{
		tag:     supported,
		printer: message.NewPrinter(supported, message.Catalog(texts)),
	}
}

// Language returns the language the messages are rendered in
func (m *Messages) Language() language.Tag {
	return m.tag
}

// Count is the result-count indicator
func (m *Messages) Count(n int) string {
	return m.printer.Sprintf(keyCount, n)
}

// NoResults is the placeholder shown for an empty view
func (m *Messages) NoResults() string {
	return m.printer.Sprintf(keyNoResults)
}

// All labels the "no category" and "no subcategory" choices
func (m *Messages) All() string {
	return m.printer.Sprintf(keyAll)
}

// Subcategories labels the subcategory controls
func (m *Messages) Subcategories() string {
	return m.printer.Sprintf(keySubcategories)
}

// FilterBy is the hint on a subcategory badge
func (m *Messages) FilterBy(subcategory string) string {
	return m.printer.Sprintf(keyFilterBy, subcategory)
}

// SearchPrompt labels the search input
func (m *Messages) SearchPrompt() string {
	return m.printer.Sprintf(keySearch)
}

// Loading is shown until the catalog is loaded
func (m *Messages) Loading() string {
	return m.printer.Sprintf(keyLoading)
}

// LoadFailures reports sources that contributed nothing
func (m *Messages) LoadFailures(failed, total int) string {
	return m.printer.Sprintf(keyFailed, failed, total)
}

// Status describes the active filter and how many terms it shows. An empty
// filter has no status.
func (m *Messages) Status(state domain.FilterState, visible int) string {
	switch {
	case state.IsSearching():
		status := m.printer.Sprintf(keySearchLabel, state.Search)
		if state.Category != "" {
			status += " " + m.printer.Sprintf(keyIn, state.Category)
			if state.Subcategory != "" {
				status += " → " + state.Subcategory
			}
		}
		return m.printer.Sprintf("%s (%d)", status, visible)
	case state.Category != "" && state.Subcategory != "":
		return m.printer.Sprintf(keyBySub, state.Category, state.Subcategory, visible)
	case state.Category != "":
		return m.printer.Sprintf(keyByCategory, state.Category, visible)
	default:
		return ""
	}
}
