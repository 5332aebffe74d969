// Package export renders a glossary view as a standalone HTML page. The
// page is assembled as an html.Node tree so term content only ever ends up
// in text nodes and escaped attribute values.
package export

import (
	"fmt"
	"hash/fnv"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"stagewiki/internal/domain"
	"stagewiki/internal/i18n"
)

// DefaultAccent colors cards of unknown categories
const DefaultAccent = "#38bdf8"

// allCategory is the data-category value of the "All" button
const allCategory = "All"

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Page is everything needed to render one view
type Page struct {
	Title         string
	Terms         []domain.Term       // the computed view, already filtered and sorted
	State         domain.FilterState  // filter that produced Terms
	Categories    []string            // category buttons, in display order
	Subcategories map[string][]string // subcategory controls per category
	Colors        map[string]string   // category -> #rrggbb
	Accent        string              // fallback color; DefaultAccent if empty
	Messages      *i18n.Messages
}

// Render writes the page as an HTML document
func Render(w io.Writer, page Page) error {
	if err := html.Render(w, Build(page)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Build returns the document node for the page
func Build(page Page) *html.Node {
	msgs := page.Messages

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, attr("lang", msgs.Language().String()))
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")))
	head.AppendChild(withText(element(atom.Title), page.Title))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	header := element(atom.Header)
	header.AppendChild(withText(element(atom.H1), page.Title))
	header.AppendChild(withText(element(atom.P, attr("id", "searchInfo")), msgs.Status(page.State, len(page.Terms))))
	body.AppendChild(header)

	body.AppendChild(categoryButtons(page))
	body.AppendChild(subcategoryControls(page))
	body.AppendChild(grid(page))
	body.AppendChild(withText(element(atom.P, attr("id", "resultCount"), attr("class", "result-count")), msgs.Count(len(page.Terms))))

	return doc
}

func categoryButtons(page Page) *html.Node {
	nav := element(atom.Nav, attr("id", "filterContainer"))
	nav.AppendChild(button(allCategory, page.Messages.All(), page.State.Category == ""))
	for _, cat := range page.Categories {
		nav.AppendChild(button(cat, cat, page.State.Category == cat))
	}
	return nav
}

func button(category, label string, active bool) *html.Node {
	b := element(atom.Button, attr("type", "button"), attr("data-category", category))
	if active {
		b.Attr = append(b.Attr, attr("class", "active"))
	}
	return withText(b, label)
}

// subcategoryControls lists the subcategories of the selected category, or
// of every category when none is selected. Each entry is the anchor target
// of the matching card badges.
func subcategoryControls(page Page) *html.Node {
	container := element(atom.Div, attr("id", "subcategoryContainer"))

	categories := page.Categories
	if page.State.Category != "" {
		categories = []string{page.State.Category}
	}

	for _, cat := range categories {
		subs := page.Subcategories[cat]
		if len(subs) == 0 {
			continue
		}
		group := element(atom.Div, attr("class", "subcategories"), attr("data-category", cat))
		group.AppendChild(withText(element(atom.Div, attr("class", "subcategories-label")), page.Messages.Subcategories()+": "+cat))

		list := element(atom.Ul)
		list.AppendChild(withText(element(atom.Li, attr("class", "tag-pill"), attr("data-subcategory", "")), page.Messages.All()))
		for _, sub := range subs {
			item := element(atom.Li,
				attr("id", anchorID(cat, sub)),
				attr("class", pillClass(page.State, cat, sub)),
				attr("data-subcategory", sub))
			list.AppendChild(withText(item, sub))
		}
		group.AppendChild(list)
		container.AppendChild(group)
	}
	return container
}

func pillClass(state domain.FilterState, cat, sub string) string {
	if state.Category == cat && state.Subcategory == sub {
		return "tag-pill active"
	}
	return "tag-pill"
}

func grid(page Page) *html.Node {
	container := element(atom.Main, attr("id", "wikiGrid"))
	if len(page.Terms) == 0 {
		container.AppendChild(withText(element(atom.P, attr("class", "placeholder")), page.Messages.NoResults()))
		return container
	}
	for _, term := range page.Terms {
		container.AppendChild(card(page, term))
	}
	return container
}

func card(page Page, term domain.Term) *html.Node {
	article := element(atom.Article,
		attr("class", "term-card"),
		attr("data-category", term.Category),
		attr("style", "border-left-color: "+categoryColor(page, term.Category)))
	if term.HasSubcategory() {
		article.Attr = append(article.Attr, attr("data-subcategory", term.Subcategory))
	}

	top := element(atom.Div, attr("class", "term-head"))
	top.AppendChild(withText(element(atom.H3), term.Title))
	top.AppendChild(withText(element(atom.Span, attr("class", "category-badge")), term.Category))
	article.AppendChild(top)

	if term.HasSubcategory() {
		wrap := element(atom.Div, attr("class", "term-sub"))
		badge := element(atom.A,
			attr("class", "tag-badge"),
			attr("href", "#"+anchorID(term.Category, term.Subcategory)),
			attr("title", page.Messages.FilterBy(term.Subcategory)))
		wrap.AppendChild(withText(badge, term.Subcategory))
		article.AppendChild(wrap)
	}

	article.AppendChild(withText(element(atom.P, attr("class", "term-desc")), term.Description))
	return article
}

// categoryColor only lets hex colors into the style attribute
func categoryColor(page Page, category string) string {
	if c, ok := page.Colors[category]; ok && colorPattern.MatchString(c) {
		return c
	}
	if colorPattern.MatchString(page.Accent) {
		return page.Accent
	}
	return DefaultAccent
}

// anchorID builds a stable element id for a subcategory control. The hash
// of the raw pair keeps ids distinct when the readable slugs coincide.
func anchorID(category, subcategory string) string {
	h := fnv.New32a()
	h.Write([]byte(category))
	h.Write([]byte{0})
	h.Write([]byte(subcategory))

	id := fmt.Sprintf("sub-%08x", h.Sum32())
	if s := slug(category + " " + subcategory); s != "" {
		id += "-" + s
	}
	return id
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
