package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"

	"stagewiki/internal/domain"
	"stagewiki/internal/i18n"
)

func testPage(terms []domain.Term, state domain.FilterState) Page {
	return Page{
		Title:         "Stage Wiki",
		Terms:         terms,
		State:         state,
		Categories:    []string{"Sound", "Light"},
		Subcategories: map[string][]string{"Light": {"Fixtures"}},
		Colors:        map[string]string{"Sound": "#f87171", "Light": "#fbbf24"},
		Messages:      i18n.New(language.English),
	}
}

func render(t *testing.T, page Page) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page))

	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	for c := range n.Descendants() {
		if match(c) {
			found = append(found, c)
		}
	}
	return found
}

func byAtom(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == a }
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && strings.Contains(" "+attrValue(n, "class")+" ", " "+class+" ")
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func TestRenderCards(t *testing.T) {
	terms := []domain.Term{
		{Title: "Mixer", Category: "Sound", Description: "Audio mixing device"},
		{Title: "Moving Head", Category: "Light", Subcategory: "Fixtures", Description: "Motorized light"},
	}
	_, doc := render(t, testPage(terms, domain.FilterState{}))

	cards := findAll(doc, hasClass("term-card"))
	require.Len(t, cards, 2)

	assert.Equal(t, "Sound", attrValue(cards[0], "data-category"))
	assert.Equal(t, "border-left-color: #f87171", attrValue(cards[0], "style"))
	assert.Empty(t, findAll(cards[0], hasClass("tag-badge")))

	badges := findAll(cards[1], hasClass("tag-badge"))
	require.Len(t, badges, 1)
	assert.Equal(t, "Fixtures", textOf(badges[0]))
	assert.Equal(t, "#"+anchorID("Light", "Fixtures"), attrValue(badges[0], "href"))
	assert.Equal(t, "Filter by 'Fixtures'", attrValue(badges[0], "title"))

	anchors := findAll(doc, func(n *html.Node) bool { return attrValue(n, "id") == anchorID("Light", "Fixtures") })
	assert.Len(t, anchors, 1)

	count := findAll(doc, hasClass("result-count"))
	require.Len(t, count, 1)
	assert.Equal(t, "2 entries found", textOf(count[0]))
}

func TestRenderEmptyShowsPlaceholder(t *testing.T) {
	_, doc := render(t, testPage(nil, domain.FilterState{Search: "zzz"}))

	assert.Empty(t, findAll(doc, hasClass("term-card")))
	placeholder := findAll(doc, hasClass("placeholder"))
	require.Len(t, placeholder, 1)
	assert.Equal(t, "No entries found. Try another term or filter.", textOf(placeholder[0]))
	assert.Equal(t, "0 entries found", textOf(findAll(doc, hasClass("result-count"))[0]))
}

func TestRenderSingularCount(t *testing.T) {
	terms := []domain.Term{{Title: "Mixer", Category: "Sound"}}
	_, doc := render(t, testPage(terms, domain.FilterState{}))
	assert.Equal(t, "1 entry found", textOf(findAll(doc, hasClass("result-count"))[0]))
}

func TestRenderTreatsFieldsAsText(t *testing.T) {
	evil := domain.Term{
		Title:       `<script>alert("t")</script>`,
		Category:    `Sound" onclick="alert(1)`,
		Subcategory: `<img src=x onerror=alert(1)>`,
		Description: `<b>bold</b> & <a href="javascript:x">link</a>`,
	}
	page := testPage([]domain.Term{evil}, domain.FilterState{})
	page.Colors[evil.Category] = `red; background: url(javascript:alert(1))`
	out, doc := render(t, page)

	assert.Empty(t, findAll(doc, byAtom(atom.Script)))
	assert.Empty(t, findAll(doc, byAtom(atom.Img)))
	assert.Empty(t, findAll(doc, byAtom(atom.B)))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")

	cards := findAll(doc, hasClass("term-card"))
	require.Len(t, cards, 1)
	card := cards[0]

	assert.Empty(t, attrValue(card, "onclick"))
	assert.Equal(t, evil.Category, attrValue(card, "data-category"))
	assert.Equal(t, "border-left-color: "+DefaultAccent, attrValue(card, "style"))

	assert.Equal(t, evil.Title, textOf(findAll(card, byAtom(atom.H3))[0]))
	assert.Equal(t, evil.Subcategory, textOf(findAll(card, hasClass("tag-badge"))[0]))
	assert.Equal(t, evil.Description, textOf(findAll(card, hasClass("term-desc"))[0]))
}

func TestRenderCategoryButtons(t *testing.T) {
	_, doc := render(t, testPage(nil, domain.FilterState{Category: "Light"}))

	buttons := findAll(doc, byAtom(atom.Button))
	require.Len(t, buttons, 3)
	assert.Equal(t, "All", attrValue(buttons[0], "data-category"))
	assert.Equal(t, "Light", attrValue(buttons[2], "data-category"))
	assert.Equal(t, "active", attrValue(buttons[2], "class"))
	assert.Empty(t, attrValue(buttons[0], "class"))

	info := findAll(doc, func(n *html.Node) bool { return attrValue(n, "id") == "searchInfo" })
	require.Len(t, info, 1)
	assert.Equal(t, "Filtered by category: Light (0)", textOf(info[0]))
}

func TestRenderGermanPage(t *testing.T) {
	page := testPage(nil, domain.FilterState{})
	page.Messages = i18n.New(language.German)
	out, doc := render(t, page)

	assert.Contains(t, out, `<html lang="de">`)
	assert.Equal(t, "Alle", textOf(findAll(doc, byAtom(atom.Button))[0]))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "bühne", slug("Bühne"))
	assert.Equal(t, "in-ear-monitoring", slug("In-Ear  Monitoring"))
	assert.Equal(t, "dmx", slug("  DMX! "))
}

func TestAnchorIDIsDistinctPerPair(t *testing.T) {
	id := anchorID("Light", "Fixtures")
	assert.Regexp(t, `^sub-[0-9a-f]{8}-light-fixtures$`, id)
	assert.Equal(t, id, anchorID("Light", "Fixtures"))

	assert.NotEqual(t, anchorID("A-b", "c"), anchorID("A", "b-c"))
	assert.NotEqual(t, anchorID("Sound", "In Ear"), anchorID("Sound", "In-Ear"))
	assert.NotEqual(t, anchorID("X", "!!!"), anchorID("X", "???"))
	assert.Regexp(t, `^sub-[0-9a-f]{8}-x$`, anchorID("X", "!!!"))
	assert.Regexp(t, `^sub-[0-9a-f]{8}$`, anchorID("", "!!!"))
}
