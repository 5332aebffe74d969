package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"stagewiki/internal/domain"
)

func exampleTerms() []domain.Term {
	return []domain.Term{
		{Title: "Patch Panel", Category: "Network", Description: "Cable routing"},
		{Title: "Moving Head", Category: "Light", Subcategory: "Fixtures", Description: "Motorized light"},
		{Title: "Mixer", Category: "Sound", Description: "Audio mixing device"},
	}
}

func titles(terms []domain.Term) []string {
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = term.Title
	}
	return out
}

func TestComputeViewWithoutFilterReturnsAllSorted(t *testing.T) {
	e := NewEngine(language.English)
	all := exampleTerms()

	view := e.ComputeView(all, domain.FilterState{})

	if diff := cmp.Diff([]string{"Mixer", "Moving Head", "Patch Panel"}, titles(view)); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
	// input order untouched
	assert.Equal(t, "Patch Panel", all[0].Title)
}

func TestComputeViewSearch(t *testing.T) {
	e := NewEngine(language.English)
	all := exampleTerms()

	view := e.ComputeView(all, domain.FilterState{Search: "head"})
	assert.Equal(t, []string{"Moving Head"}, titles(view))

	// search spans description, subcategory and category too
	assert.Equal(t, []string{"Patch Panel"}, titles(e.ComputeView(all, domain.FilterState{Search: "routing"})))
	assert.Equal(t, []string{"Moving Head"}, titles(e.ComputeView(all, domain.FilterState{Search: "fix tures"})))
	assert.Equal(t, []string{"Mixer"}, titles(e.ComputeView(all, domain.FilterState{Search: "SOUND"})))
}

func TestComputeViewSearchIgnoresCaseSpacesAndHyphens(t *testing.T) {
	e := NewEngine(language.English)
	all := []domain.Term{
		{Title: "Headset", Category: "Sound", Description: "Microphone worn on the head"},
		{Title: "Fader", Category: "Sound", Description: "Level control"},
	}

	for _, q := range []string{"head-set", "HEAD SET", "he-ad s-et", "  headset  "} {
		view := e.ComputeView(all, domain.FilterState{Search: q})
		assert.Equal(t, []string{"Headset"}, titles(view), "query %q", q)
	}
}

func TestComputeViewCategoryAndSubcategory(t *testing.T) {
	e := NewEngine(language.English)
	all := append(exampleTerms(),
		domain.Term{Title: "Fresnel", Category: "Light", Subcategory: "Fixtures"},
		domain.Term{Title: "Gel", Category: "Light", Subcategory: "Accessories"},
		domain.Term{Title: "Dimmer", Category: "Light"},
	)

	var state domain.FilterState
	state.SelectCategory("Light")
	assert.Equal(t, []string{"Dimmer", "Fresnel", "Gel", "Moving Head"}, titles(e.ComputeView(all, state)))

	state.SelectSubcategory("Fixtures", "Light")
	view := e.ComputeView(all, state)
	assert.Equal(t, []string{"Fresnel", "Moving Head"}, titles(view))
	for _, term := range view {
		assert.Equal(t, "Light", term.Category)
		assert.Equal(t, "Fixtures", term.Subcategory)
	}

	// "All" under the category
	state.SelectSubcategory("", "Light")
	assert.Equal(t, []string{"Dimmer", "Fresnel", "Gel", "Moving Head"}, titles(e.ComputeView(all, state)))
}

func TestComputeViewSearchWithinSubcategory(t *testing.T) {
	e := NewEngine(language.English)
	all := []domain.Term{
		{Title: "Fresnel", Category: "Light", Subcategory: "Fixtures", Description: "soft edge lens"},
		{Title: "Profile", Category: "Light", Subcategory: "Fixtures", Description: "hard edge"},
		{Title: "Lens Tube", Category: "Light", Subcategory: "Accessories", Description: "lens"},
	}

	var state domain.FilterState
	state.SelectSubcategory("Fixtures", "Light")
	state.SetSearch("lens")
	assert.Equal(t, []string{"Fresnel"}, titles(e.ComputeView(all, state)))

	// clearing the search restores the category-only view
	state.SetSearch("")
	assert.Equal(t, "", state.Subcategory)
	assert.Equal(t, []string{"Fresnel", "Lens Tube", "Profile"}, titles(e.ComputeView(all, state)))
}

func TestClearingSearchWithCategoryRestoresCategoryView(t *testing.T) {
	e := NewEngine(language.English)
	all := exampleTerms()

	var state domain.FilterState
	state.SelectCategory("Sound")
	state.SetSearch("head")
	assert.Empty(t, e.ComputeView(all, state))

	state.SetSearch("   ")
	assert.Equal(t, []string{"Mixer"}, titles(e.ComputeView(all, state)))
}

func TestComputeViewEmptyResultIsNotNil(t *testing.T) {
	e := NewEngine(language.English)

	view := e.ComputeView(exampleTerms(), domain.FilterState{Search: "nothing matches this"})
	require.NotNil(t, view)
	assert.Empty(t, view)

	assert.Empty(t, e.ComputeView(nil, domain.FilterState{}))
}

func TestComputeViewIsSubsetOfInput(t *testing.T) {
	e := NewEngine(language.English)
	all := append(exampleTerms(),
		domain.Term{Title: "Truss", Category: "Stage", Subcategory: "Rigging", Description: "Aluminium frame"},
		domain.Term{Title: "Shackle", Category: "Stage", Subcategory: "Rigging", Description: "Metal link"},
		domain.Term{Title: "Schuko", Category: "Power", Description: "Plug"},
	)
	inInput := make(map[domain.Term]bool)
	for _, term := range all {
		inInput[term] = true
	}

	states := []domain.FilterState{
		{},
		{Search: "a"},
		{Category: "Stage"},
		{Category: "Stage", Subcategory: "Rigging"},
		{Category: "Stage", Subcategory: "Rigging", Search: "metal"},
		{Category: "Unknown"},
		{Subcategory: "Rigging"},
	}
	for _, state := range states {
		view := e.ComputeView(all, state)
		assert.LessOrEqual(t, len(view), len(all))
		for _, term := range view {
			assert.True(t, inInput[term], "state %+v produced foreign term %+v", state, term)
		}
	}
}

func TestSubcategoryWithoutCategoryIsIgnored(t *testing.T) {
	e := NewEngine(language.English)
	view := e.ComputeView(exampleTerms(), domain.FilterState{Subcategory: "Fixtures"})
	assert.Len(t, view, 3)
}

func TestSubcategoriesOf(t *testing.T) {
	e := NewEngine(language.English)
	all := append(exampleTerms(),
		domain.Term{Title: "Gel", Category: "Light", Subcategory: "Accessories"},
		domain.Term{Title: "Fresnel", Category: "Light", Subcategory: "Fixtures"},
		domain.Term{Title: "Dimmer", Category: "Light"},
		domain.Term{Title: "Truss", Category: "Stage", Subcategory: "Rigging"},
	)

	assert.Equal(t, []string{"Accessories", "Fixtures"}, e.SubcategoriesOf(all, "Light"))
	assert.Empty(t, e.SubcategoriesOf(all, "Sound"))
	assert.Empty(t, e.SubcategoriesOf(all, "Video"))
	assert.Equal(t, []string{"Fixtures"}, e.SubcategoriesOf(exampleTerms(), "Light"))
}

func TestCategoriesOfAndCounts(t *testing.T) {
	e := NewEngine(language.English)
	all := append(exampleTerms(), domain.Term{Title: "Fresnel", Category: "Light"})

	assert.Equal(t, []string{"Light", "Network", "Sound"}, e.CategoriesOf(all))
	assert.Equal(t, map[string]int{"Light": 2, "Network": 1, "Sound": 1}, CountByCategory(all))
}

func TestSortByTitle(t *testing.T) {
	e := NewEngine(language.English)
	terms := append(exampleTerms(), domain.Term{Title: "ampere", Category: "Power"})

	e.SortByTitle(terms)

	assert.Equal(t, []string{"ampere", "Mixer", "Moving Head", "Patch Panel"}, titles(terms))
}

func TestMergeCategories(t *testing.T) {
	e := NewEngine(language.English)
	all := append(exampleTerms(),
		domain.Term{Title: "Rigging", Category: "Automation"},
		domain.Term{Title: "Truss", Category: "Stage"},
	)

	got := e.MergeCategories([]string{"Stage", "Sound", "Stage", "Video"}, all)

	assert.Equal(t, []string{"Stage", "Sound", "Video", "Automation", "Light", "Network"}, got)
	assert.Equal(t, e.CategoriesOf(all), e.MergeCategories(nil, all))
}
